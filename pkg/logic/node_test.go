package logic

import "testing"

func TestNodeDefaults(t *testing.T) {
	var n Node

	if got := n.Kind(); got != KindSpan {
		t.Errorf("Kind() = %q, want %q", got, KindSpan)
	}
	if n.IsLeaf() {
		t.Error("IsLeaf() = true for untyped node")
	}
	if got := n.DisplayRelation(); got != KindSpan {
		t.Errorf("DisplayRelation() = %q, want %q", got, KindSpan)
	}
	if got := n.Tooltip(); got != KindSpan {
		t.Errorf("Tooltip() = %q, want %q", got, KindSpan)
	}
}

func TestNodeTooltipPrefersText(t *testing.T) {
	n := Node{Relation: "cause", Text: "the fuse blew"}
	if got := n.Tooltip(); got != "the fuse blew" {
		t.Errorf("Tooltip() = %q, want text span", got)
	}

	n.Text = ""
	if got := n.Tooltip(); got != "cause" {
		t.Errorf("Tooltip() = %q, want relation", got)
	}
}
