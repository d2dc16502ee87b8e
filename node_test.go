package latex_test

import (
	"encoding/json"
	"testing"

	"github.com/eolymp/go-latex-ast"
	"github.com/google/go-cmp/cmp"
)

func TestChildren(t *testing.T) {
	title := group(text("Intro"))
	short := optional(text("I"))
	arg := optional(text("language=Go"))
	body := text("body")
	cols := group(text("cc"))
	def := group(param("1"))

	tt := []struct {
		name   string
		node   latex.Node
		output []latex.Node
	}{
		{name: "text", node: text("x"), output: nil},
		{name: "command args", node: command("section", short, title), output: []latex.Node{short, title}},
		{name: "command without args", node: command("item"), output: nil},
		{name: "environment content goes before args", node: env("tabular", []latex.Node{cols}, body), output: []latex.Node{body, cols}},
		{name: "math environment", node: &latex.MathEnv{Name: "align", Args: []latex.Node{cols}, Content: []latex.Node{body}}, output: []latex.Node{body, cols}},
		{name: "aligned environment", node: &latex.MathEnvAligned{Name: "aligned", Content: []latex.Node{body}}, output: []latex.Node{body}},
		{name: "text command", node: &latex.TextCommand{Arg: title}, output: []latex.Node{title}},
		{name: "text command without arg", node: &latex.TextCommand{}, output: nil},
		{name: "def", node: &latex.DefCommand{Name: "def", Token: "\\foo", Args: []latex.Node{param("1"), def}}, output: []latex.Node{param("1"), def}},
		{name: "let", node: &latex.LetCommand{Name: "let", Token: "\\foo", AliasTarget: "\\bar"}, output: nil},
		{name: "lstlisting with arg", node: &latex.Lstlisting{Name: "lstlisting", Arg: arg, Content: "x := 1"}, output: []latex.Node{arg}},
		{name: "lstlisting without arg", node: &latex.Lstlisting{Name: "lstlisting", Content: "x := 1"}, output: nil},
		{name: "minted", node: &latex.Minted{Name: "minted", Args: []latex.Node{group(text("go"))}, Content: "x := 1"}, output: []latex.Node{group(text("go"))}},
		{name: "verbatim keeps raw text", node: &latex.Verbatim{Name: "verbatim", Content: "\\foo"}, output: nil},
		{name: "superscript", node: sup(mc("2")), output: []latex.Node{mc("2")}},
		{name: "matching paren", node: &latex.MathMatchingParen{Left: "(", Right: ")", Content: []latex.Node{mc("x")}}, output: []latex.Node{mc("x")}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := latex.Children(tc.node)
			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Children do not match (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChildrenReturnsCopy(t *testing.T) {
	g := group(text("a"), text("b"))

	children := latex.Children(g)
	children[0] = text("z")

	if g.Content[0].(*latex.TextString).Content != "a" {
		t.Errorf("Children must not expose node content for modification")
	}
}

// every kind must be decodable, enumerable and printable, even with all fields empty
func TestAllKinds(t *testing.T) {
	for _, kind := range latex.AllKinds() {
		t.Run(string(kind), func(t *testing.T) {
			data, _ := json.Marshal(map[string]string{"kind": string(kind)})

			node, err := latex.UnmarshalNode(data)
			if err != nil {
				t.Fatalf("Unable to decode empty node: %v", err)
			}

			if node.Kind() != kind {
				t.Errorf("Kind does not match: want %v, got %v", kind, node.Kind())
			}

			if node.Location() != nil {
				t.Errorf("Location must be empty, got %v", node.Location())
			}

			_ = latex.Children(node)
			_ = latex.Stringify(node, latex.Options{})
		})
	}
}
