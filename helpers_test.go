package latex_test

import "github.com/eolymp/go-latex-ast"

func text(content string) *latex.TextString {
	return &latex.TextString{Content: content}
}

func mc(content string) *latex.MathCharacter {
	return &latex.MathCharacter{Content: content}
}

func group(children ...latex.Node) *latex.Group {
	return &latex.Group{Content: children}
}

func optional(children ...latex.Node) *latex.OptionalArg {
	return &latex.OptionalArg{Content: children}
}

func command(name string, args ...latex.Node) *latex.Command {
	return &latex.Command{Name: name, Args: args}
}

func env(name string, args []latex.Node, children ...latex.Node) *latex.Environment {
	return &latex.Environment{Name: name, Args: args, Content: children}
}

func sup(children ...latex.Node) *latex.Superscript {
	return &latex.Superscript{Content: children}
}

func param(n string) *latex.CommandParameter {
	return &latex.CommandParameter{Nargs: n}
}

// span is a location on the first line, columns follow offsets
func span(start, end int) *latex.Location {
	return &latex.Location{
		Start: latex.Point{Offset: start, Line: 1, Column: start + 1},
		End:   latex.Point{Offset: end, Line: 1, Column: end + 1},
	}
}

// align is \begin{align}a^2+b^2=c^2\end{align}
func align() *latex.MathEnv {
	return &latex.MathEnv{Name: "align", Content: []latex.Node{
		mc("a"), sup(mc("2")), mc("+"),
		mc("b"), sup(mc("2")), mc("="),
		mc("c"), sup(mc("2")),
	}}
}
