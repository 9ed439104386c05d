package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Holmfrior/Technopreneurship/pkg/logic"
	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		input  string
		want   string
	}{
		{"", "graph.json", "graph"},
		{"", "dir/graph.json", "dir/graph"},
		{"out.svg", "graph.json", "out"},
		{"out.png", "graph.json", "out"},
		{"custom", "graph.json", "custom"},
		{"archive.tar", "graph.json", "archive.tar"}, // not a render format
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestSplitTitles(t *testing.T) {
	if got := splitTitles(""); got != nil {
		t.Errorf("splitTitles(\"\") = %v, want nil", got)
	}
	if got := splitTitles("before,after"); !reflect.DeepEqual(got, []string{"before", "after"}) {
		t.Errorf("splitTitles = %v", got)
	}
}

func TestRunRenderDOT(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")

	g := visual.Flatten(&logic.Node{
		Relation: "cause",
		Children: []*logic.Node{
			{Type: logic.KindLeaf, Text: "it rained"},
			{Type: logic.KindLeaf, Text: "we stayed in"},
		},
	}, visual.PrefixReference)
	if err := visual.WriteGraphFile(g, input); err != nil {
		t.Fatal(err)
	}

	if err := runRender([]string{input}, "", []string{"dot"}, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "graph.dot"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"digraph", "ref_0", "CAUSE", "it rained"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}

func TestRunRenderRejectsJSON(t *testing.T) {
	if err := runRender([]string{"graph.json"}, "", []string{"json"}, nil); err == nil {
		t.Error("expected error for json output format")
	}
}
