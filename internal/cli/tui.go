package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Holmfrior/Technopreneurship/pkg/logic"
	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
)

// Explorer styles
var (
	explorerPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
	explorerActiveStyle = explorerPaneStyle.
				BorderForeground(colorCyan)
	explorerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	explorerLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

// treeRow is one display line of a flattened tree.
type treeRow struct {
	depth int
	label string
	leaf  bool
}

// treePane holds one side of the explorer.
type treePane struct {
	title  string
	rows   []treeRow
	cursor int
	offset int
}

// TreeExplorerModel is the bubbletea model for the side-by-side tree explorer.
type TreeExplorerModel struct {
	panes  [2]treePane
	active int
	score  int
	delta  int
	height int
	width  int
}

// NewTreeExplorerModel builds the explorer from an analysis result.
func NewTreeExplorerModel(result *pipeline.Result) TreeExplorerModel {
	return TreeExplorerModel{
		panes: [2]treePane{
			{title: pipeline.SideReference, rows: treeRows(result.Ref.Tree)},
			{title: pipeline.SideCompared, rows: treeRows(result.Comp.Tree)},
		},
		score:  result.Score,
		delta:  result.Delta,
		height: 18,
		width:  48,
	}
}

// treeRows flattens a tree into indented display rows, children in order.
func treeRows(root *logic.Node) []treeRow {
	var rows []treeRow
	type frame struct {
		node  *logic.Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.node == nil {
			continue
		}
		label := strings.ToUpper(cur.node.DisplayRelation())
		if cur.node.IsLeaf() {
			label = cur.node.Text
		}
		rows = append(rows, treeRow{depth: cur.depth, label: label, leaf: cur.node.IsLeaf()})
		for i := len(cur.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{cur.node.Children[i], cur.depth + 1})
		}
	}
	return rows
}

func (m TreeExplorerModel) Init() tea.Cmd {
	return nil
}

func (m TreeExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "left", "right", "h", "l":
			m.active = 1 - m.active
		case "up", "k":
			p := &m.panes[m.active]
			if p.cursor > 0 {
				p.cursor--
				if p.cursor < p.offset {
					p.offset = p.cursor
				}
			}
		case "down", "j":
			p := &m.panes[m.active]
			if p.cursor < len(p.rows)-1 {
				p.cursor++
				if p.cursor >= p.offset+m.height {
					p.offset = p.cursor - m.height + 1
				}
			}
		case "g":
			p := &m.panes[m.active]
			p.cursor, p.offset = 0, 0
		}
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.width = msg.Width/2 - 4
		}
	}
	return m, nil
}

func (m TreeExplorerModel) View() string {
	header := StyleTitle.Render("logicmap") + "  " +
		scoreStyle(m.score).Render(fmt.Sprintf("%d%% match", m.score)) +
		StyleDim.Render(fmt.Sprintf("  depth delta %+d", m.delta))

	var panes []string
	for i := range m.panes {
		panes = append(panes, m.renderPane(i))
	}

	footer := StyleDim.Render("tab: switch side · j/k: move · q: quit")
	return header + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, panes...) + "\n" +
		footer + "\n"
}

// renderPane renders one side as a scrolling window around its cursor.
func (m TreeExplorerModel) renderPane(idx int) string {
	p := m.panes[idx]
	var b strings.Builder
	b.WriteString(explorerLabelStyle.Render(p.title) + "\n")

	end := p.offset + m.height
	if end > len(p.rows) {
		end = len(p.rows)
	}
	for i := p.offset; i < end; i++ {
		row := p.rows[i]
		line := strings.Repeat("  ", row.depth)
		switch {
		case row.leaf:
			line += styleLeaf.Render(row.label)
		default:
			line += styleRelation.Render(row.label)
		}
		if lipgloss.Width(line) > m.width {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		if i == p.cursor && idx == m.active {
			line = explorerCursorStyle.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	style := explorerPaneStyle
	if idx == m.active {
		style = explorerActiveStyle
	}
	return style.Width(m.width).Render(b.String())
}

// runTreeExplorer opens the interactive explorer for an analysis result.
func runTreeExplorer(result *pipeline.Result) error {
	_, err := tea.NewProgram(NewTreeExplorerModel(result), tea.WithAltScreen()).Run()
	return err
}
