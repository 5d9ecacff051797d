package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FlowListModel - Interactive flow browsing
// =============================================================================

// FlowSelection holds the result of the flow selection.
type FlowSelection struct {
	Flow diagram.Flow
}

// FlowListModel is the bubbletea model for browsing a document's flows.
type FlowListModel struct {
	Flows    []diagram.Flow
	Cursor   int
	Selected *FlowSelection
	Height   int
	Offset   int
}

// NewFlowListModel creates a new flow list model.
func NewFlowListModel(flows []diagram.Flow) FlowListModel {
	return FlowListModel{
		Flows:  flows,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m FlowListModel) Init() tea.Cmd {
	return nil
}

func (m FlowListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Flows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			flow := m.Flows[m.Cursor]
			m.Selected = &FlowSelection{Flow: flow}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FlowListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Flows"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Flows) {
		end = len(m.Flows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		f := m.Flows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		comparison := "—"
		if f.ComparisonValue != nil {
			comparison = fmt.Sprintf("%g", *f.ComparisonValue)
		}

		color := "—"
		if f.Color != nil {
			color = *f.Color
		}

		rows = append(rows, []string{
			cursor, f.Source, f.Target, fmt.Sprintf("%g", f.Value), comparison, color,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Source", "Target", "Value", "Compare", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Flows) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if col >= 4 {
				base = base.Foreground(colorDim)
			}
			if actualIdx == m.Cursor {
				if col < 4 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Flows))))

	return b.String()
}

// browseFlows runs the interactive flow browser and prints the details of
// the flow the user picked, if any.
func browseFlows(flows []diagram.Flow) error {
	if len(flows) == 0 {
		printDetail("No flows to browse")
		return nil
	}

	p := tea.NewProgram(NewFlowListModel(flows))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(FlowListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	f := fm.Selected.Flow
	fmt.Println()
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s %s %s", f.Source, iconArrow, f.Target)))
	printKeyValue("id", f.ID)
	printKeyValue("value", fmt.Sprintf("%g", f.Value))
	if f.ComparisonValue != nil {
		printKeyValue("comparison", fmt.Sprintf("%g", *f.ComparisonValue))
	}
	if f.Color != nil {
		printKeyValue("color", *f.Color)
	}
	if f.Opacity != nil {
		printKeyValue("opacity", fmt.Sprintf("%.2f", *f.Opacity))
	}
	for k, v := range f.Meta {
		printKeyValue(k, fmt.Sprintf("%v", v))
	}
	return nil
}
