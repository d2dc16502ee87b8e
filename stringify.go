package latex

import (
	"fmt"
	"io"
	"strings"
)

// Options control the text produced by Stringify.
type Options struct {
	// LineBreak is written after \begin{...}, before and after \end{...}, around display math and after \par.
	// Empty line break produces compact single-line output.
	LineBreak string
}

// Render writes LaTeX source of the nodes to w.
func Render(w io.Writer, nodes []Node, opts Options) error {
	_, err := fmt.Fprint(w, StringifyAll(nodes, opts))
	return err
}

// Stringify returns LaTeX source of the node.
func Stringify(node Node, opts Options) string {
	b := &strings.Builder{}
	stringify(b, node, opts)
	return b.String()
}

// StringifyAll returns LaTeX source of the sibling nodes. A space is put between siblings whenever writing them
// next to each other would merge them into different tokens.
func StringifyAll(nodes []Node, opts Options) string {
	b := &strings.Builder{}
	stringifyAll(b, nodes, opts)
	return b.String()
}

func stringifyAll(b *strings.Builder, nodes []Node, opts Options) {
	for i, node := range nodes {
		stringify(b, node, opts)

		if i+1 < len(nodes) && separate(node, nodes[i+1]) {
			b.WriteString(" ")
		}
	}
}

// separate tells if a space is needed between adjacent siblings
func separate(cur, next Node) bool {
	if _, ok := cur.(*CommandParameter); ok {
		return false
	}

	switch next.(type) {
	case *TextString:
		return true
	case *MathCharacter:
		if _, ok := cur.(*MathCharacter); !ok {
			return true
		}
	case *CommandParameter:
		// \foo #1 rather than \foo#1
		if c, ok := cur.(*Command); ok && len(c.Args) == 0 {
			return true
		}
	}

	return false
}

func stringify(b *strings.Builder, node Node, opts Options) {
	lb := opts.LineBreak

	switch n := node.(type) {
	case *TextString:
		b.WriteString(n.Content)
	case *Command:
		b.WriteString("\\" + n.Name)
		stringifyAll(b, n.Args, opts)
	case *TextCommand:
		b.WriteString("\\text")
		if n.Arg != nil {
			stringify(b, n.Arg, opts)
		}
	case *LetCommand:
		b.WriteString("\\let" + n.Token + n.AliasTarget)
	case *DefCommand:
		b.WriteString("\\def" + n.Token)
		stringifyAll(b, n.Args, opts)
	case *Environment:
		environment(b, n.Name, n.Args, n.Content, opts)
	case *MathEnv:
		environment(b, n.Name, n.Args, n.Content, opts)
	case *MathEnvAligned:
		environment(b, n.Name, n.Args, n.Content, opts)
	case *Group:
		b.WriteString("{")
		stringifyAll(b, n.Content, opts)
		b.WriteString("}")
	case *OptionalArg:
		b.WriteString("[")
		stringifyAll(b, n.Content, opts)
		b.WriteString("]")
	case *Parbreak:
		b.WriteString("\\par" + lb)
	case *Superscript:
		b.WriteString("^")
		stringifyAll(b, n.Content, opts)
	case *Subscript:
		b.WriteString("_")
		stringifyAll(b, n.Content, opts)
	case *AlignmentTab:
		b.WriteString("&")
	case *CommandParameter:
		b.WriteString("#" + n.Nargs)
	case *ActiveCharacter:
		b.WriteString("~")
	case *Ignore:
	case *Verb:
		b.WriteString("\\verb" + n.Escape + n.Content + n.Escape)
	case *Verbatim:
		b.WriteString("\\begin{verbatim}" + n.Content + "\\end{verbatim}" + lb)
	case *Minted:
		b.WriteString("\\begin{minted}")
		stringifyAll(b, n.Args, Options{})
		b.WriteString(n.Content + "\\end{minted}" + lb)
	case *Lstlisting:
		b.WriteString("\\begin{lstlisting}")
		// arguments of listings are always compact
		if n.Arg != nil {
			stringify(b, n.Arg, Options{})
		}

		b.WriteString(n.Content + "\\end{lstlisting}")
	case *InlineMath:
		b.WriteString("$")
		stringifyAll(b, n.Content, opts)
		b.WriteString("$")
	case *DisplayMath:
		b.WriteString("\\[" + lb + strings.TrimSpace(StringifyAll(n.Content, opts)) + lb + "\\]" + lb)
	case *MathCharacter:
		b.WriteString(n.Content)
	case *MathMatchingParen:
		b.WriteString("\\left" + n.Left)
		stringifyAll(b, n.Content, opts)
		b.WriteString("\\right" + n.Right)
	}
}

func environment(b *strings.Builder, name string, args, content []Node, opts Options) {
	lb := opts.LineBreak

	b.WriteString("\\begin{" + name + "}")
	b.WriteString(strings.TrimSpace(StringifyAll(args, opts)))
	b.WriteString(lb)
	b.WriteString(strings.TrimSpace(StringifyAll(content, opts)))
	b.WriteString(lb)
	b.WriteString("\\end{" + name + "}" + lb)
}
