// Package tui provides the interactive catalog browser. It wraps the
// already filtered and sorted record set in a fuzzy-filterable list;
// selecting an entry prints the full record as JSON on exit.
package tui

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ormodels/ormodels/internal/domain"
	"github.com/ormodels/ormodels/internal/render"
)

// modelItem wraps a Model for use in the bubbles list.
type modelItem struct {
	model domain.Model
}

// FilterValue implements list.Item.
func (i modelItem) FilterValue() string {
	return i.model.Name + " " + i.model.ID
}

// Title implements list.DefaultItem.
func (i modelItem) Title() string {
	return i.model.Name
}

// Description implements list.DefaultItem.
func (i modelItem) Description() string {
	return fmt.Sprintf("%s · %s · %dk ctx",
		i.model.ID, render.PriceLabel(&i.model), i.model.ContextLength/1000)
}

type browser struct {
	list     list.Model
	selected *domain.Model
}

// Browse runs the interactive list over the record set.
func Browse(models []domain.Model) error {
	items := make([]list.Item, len(models))
	for i, m := range models {
		items[i] = modelItem{model: m}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 24)
	l.Title = fmt.Sprintf("OpenRouter models (%d)", len(models))
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7AA2F7")).
		Padding(0, 1)

	b := &browser{list: l}
	out, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run browser: %w", err)
	}

	if fin, ok := out.(*browser); ok && fin.selected != nil {
		data, err := json.MarshalIndent(fin.selected, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal model: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}

// Init implements tea.Model.
func (b *browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Don't hijack keys while the user is typing a filter.
		if b.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "enter":
			if item, ok := b.list.SelectedItem().(modelItem); ok {
				b.selected = &item.model
			}
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b *browser) View() string {
	return b.list.View()
}
