package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Holmfrior/Technopreneurship/pkg/logic"
	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

func explorerResult() *pipeline.Result {
	ref := &logic.Node{
		Relation: "cause",
		Children: []*logic.Node{
			{Type: logic.KindLeaf, Text: "it rained"},
			{Type: logic.KindLeaf, Text: "we stayed in"},
		},
	}
	comp := &logic.Node{Type: logic.KindLeaf, Text: "it rained"}
	return &pipeline.Result{
		Ref:   pipeline.Analysis{Tree: ref, Depth: 2, Graph: visual.Flatten(ref, "ref")},
		Comp:  pipeline.Analysis{Tree: comp, Depth: 1, Graph: visual.Flatten(comp, "comp")},
		Score: 50,
		Delta: -1,
	}
}

func TestTreeRows(t *testing.T) {
	rows := treeRows(explorerResult().Ref.Tree)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].label != "CAUSE" || rows[0].leaf {
		t.Errorf("root row = %+v, want internal CAUSE", rows[0])
	}
	if rows[1].label != "it rained" || !rows[1].leaf || rows[1].depth != 1 {
		t.Errorf("first child row = %+v", rows[1])
	}
	if rows[2].label != "we stayed in" {
		t.Errorf("second child row = %+v, children out of order", rows[2])
	}
}

func TestTreeExplorerNavigation(t *testing.T) {
	m := NewTreeExplorerModel(explorerResult())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(TreeExplorerModel)
	if m.panes[0].cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.panes[0].cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(TreeExplorerModel)
	if m.active != 1 {
		t.Errorf("active = %d after tab, want 1", m.active)
	}

	// Single-row compared side: cursor stays put
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(TreeExplorerModel)
	if m.panes[1].cursor != 0 {
		t.Errorf("compared cursor = %d, want 0", m.panes[1].cursor)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestTreeExplorerView(t *testing.T) {
	m := NewTreeExplorerModel(explorerResult())
	view := m.View()

	for _, want := range []string{"50% match", "reference", "compared", "CAUSE", "it rained"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
