package latex

// Kind is the discriminator of a Node variant, it matches the "kind" field produced by the parser.
type Kind string

const (
	KindTextString        Kind = "text.string"
	KindCommand           Kind = "command"
	KindTextCommand       Kind = "command.text"
	KindLetCommand        Kind = "command.let"
	KindDefCommand        Kind = "command.def"
	KindEnvironment       Kind = "env"
	KindMathEnv           Kind = "env.math.align"
	KindMathEnvAligned    Kind = "env.math.aligned"
	KindGroup             Kind = "arg.group"
	KindOptionalArg       Kind = "arg.optional"
	KindParbreak          Kind = "parbreak"
	KindSuperscript       Kind = "superscript"
	KindSubscript         Kind = "subscript"
	KindAlignmentTab      Kind = "alignmentTab"
	KindCommandParameter  Kind = "commandParameter"
	KindActiveCharacter   Kind = "activeCharacter"
	KindIgnore            Kind = "ignore"
	KindVerb              Kind = "verb"
	KindVerbatim          Kind = "env.verbatim"
	KindMinted            Kind = "env.minted"
	KindLstlisting        Kind = "env.lstlisting"
	KindInlineMath        Kind = "inlineMath"
	KindDisplayMath       Kind = "displayMath"
	KindMathCharacter     Kind = "math.character"
	KindMathMatchingParen Kind = "math.matching_paren"
)

// AllKinds returns every node kind in declaration order.
func AllKinds() []Kind {
	return []Kind{
		KindTextString, KindCommand, KindTextCommand, KindLetCommand, KindDefCommand,
		KindEnvironment, KindMathEnv, KindMathEnvAligned, KindGroup, KindOptionalArg,
		KindParbreak, KindSuperscript, KindSubscript, KindAlignmentTab, KindCommandParameter,
		KindActiveCharacter, KindIgnore, KindVerb, KindVerbatim, KindMinted,
		KindLstlisting, KindInlineMath, KindDisplayMath, KindMathCharacter, KindMathMatchingParen,
	}
}

// Point is a position in the source: 0-based offset, 1-based line and column.
type Point struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Location is a source span, from Start to End.
type Location struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Node is one element of the document tree. The set of variants is closed, all of them are declared in this file.
//
//sumtype:decl
type Node interface {
	Kind() Kind
	Location() *Location
	isNode()
}

// Nodes is an ordered sequence of sibling nodes.
type Nodes []Node

// TextString is a run of plain text.
type TextString struct {
	Content string    `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

// Command is a macro call like \section[short]{Title}, each argument is either *OptionalArg or *Group.
type Command struct {
	Name string    `json:"name"`
	Args Nodes     `json:"args"`
	Loc  *Location `json:"location,omitempty"`
}

// TextCommand is amsmath \text{...}.
type TextCommand struct {
	Arg *Group    `json:"arg"`
	Loc *Location `json:"location,omitempty"`
}

// LetCommand is \let\alias\target, its tokens are kept raw.
type LetCommand struct {
	Name        string    `json:"name"`
	Token       string    `json:"token"`
	AliasTarget string    `json:"aliasTarget"`
	Loc         *Location `json:"location,omitempty"`
}

// DefCommand is \def\token#1{...}, arguments may include *CommandParameter placeholders.
type DefCommand struct {
	Name  string    `json:"name"`
	Token string    `json:"token"`
	Args  Nodes     `json:"args"`
	Loc   *Location `json:"location,omitempty"`
}

type Environment struct {
	Name    string    `json:"name"`
	Args    Nodes     `json:"args"`
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

// MathEnv is a math alignment environment such as align or gather.
type MathEnv struct {
	Name    string    `json:"name"`
	Args    Nodes     `json:"args"`
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

// MathEnvAligned is an alignment environment nested in math mode such as aligned or gathered.
type MathEnvAligned struct {
	Name    string    `json:"name"`
	Args    Nodes     `json:"args"`
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type Group struct {
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type OptionalArg struct {
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type Parbreak struct {
	Loc *Location `json:"location,omitempty"`
}

type Superscript struct {
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type Subscript struct {
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type AlignmentTab struct {
	Loc *Location `json:"location,omitempty"`
}

// CommandParameter is a #n placeholder in a macro definition.
type CommandParameter struct {
	Nargs string    `json:"nargs"`
	Loc   *Location `json:"location,omitempty"`
}

// ActiveCharacter is ~.
type ActiveCharacter struct {
	Loc *Location `json:"location,omitempty"`
}

type Ignore struct {
	Loc *Location `json:"location,omitempty"`
}

// Verb is \verb|...|, Escape is the delimiter character.
type Verb struct {
	Name    string    `json:"name"`
	Escape  string    `json:"escape"`
	Content string    `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type Verbatim struct {
	Name    string    `json:"name"`
	Content string    `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type Minted struct {
	Name    string    `json:"name"`
	Args    Nodes     `json:"args"`
	Content string    `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type Lstlisting struct {
	Name    string       `json:"name"`
	Arg     *OptionalArg `json:"arg,omitempty"`
	Content string       `json:"content"`
	Loc     *Location    `json:"location,omitempty"`
}

type InlineMath struct {
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type DisplayMath struct {
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

// MathCharacter is a single symbol in math mode.
type MathCharacter struct {
	Content string    `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

// MathMatchingParen is \left( ... \right).
type MathMatchingParen struct {
	Left    string    `json:"left"`
	Right   string    `json:"right"`
	Content Nodes     `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

func (*TextString) Kind() Kind        { return KindTextString }
func (*Command) Kind() Kind           { return KindCommand }
func (*TextCommand) Kind() Kind       { return KindTextCommand }
func (*LetCommand) Kind() Kind        { return KindLetCommand }
func (*DefCommand) Kind() Kind        { return KindDefCommand }
func (*Environment) Kind() Kind       { return KindEnvironment }
func (*MathEnv) Kind() Kind           { return KindMathEnv }
func (*MathEnvAligned) Kind() Kind    { return KindMathEnvAligned }
func (*Group) Kind() Kind             { return KindGroup }
func (*OptionalArg) Kind() Kind       { return KindOptionalArg }
func (*Parbreak) Kind() Kind          { return KindParbreak }
func (*Superscript) Kind() Kind       { return KindSuperscript }
func (*Subscript) Kind() Kind         { return KindSubscript }
func (*AlignmentTab) Kind() Kind      { return KindAlignmentTab }
func (*CommandParameter) Kind() Kind  { return KindCommandParameter }
func (*ActiveCharacter) Kind() Kind   { return KindActiveCharacter }
func (*Ignore) Kind() Kind            { return KindIgnore }
func (*Verb) Kind() Kind              { return KindVerb }
func (*Verbatim) Kind() Kind          { return KindVerbatim }
func (*Minted) Kind() Kind            { return KindMinted }
func (*Lstlisting) Kind() Kind        { return KindLstlisting }
func (*InlineMath) Kind() Kind        { return KindInlineMath }
func (*DisplayMath) Kind() Kind       { return KindDisplayMath }
func (*MathCharacter) Kind() Kind     { return KindMathCharacter }
func (*MathMatchingParen) Kind() Kind { return KindMathMatchingParen }

func (n *TextString) Location() *Location        { return n.Loc }
func (n *Command) Location() *Location           { return n.Loc }
func (n *TextCommand) Location() *Location       { return n.Loc }
func (n *LetCommand) Location() *Location        { return n.Loc }
func (n *DefCommand) Location() *Location        { return n.Loc }
func (n *Environment) Location() *Location       { return n.Loc }
func (n *MathEnv) Location() *Location           { return n.Loc }
func (n *MathEnvAligned) Location() *Location    { return n.Loc }
func (n *Group) Location() *Location             { return n.Loc }
func (n *OptionalArg) Location() *Location       { return n.Loc }
func (n *Parbreak) Location() *Location          { return n.Loc }
func (n *Superscript) Location() *Location       { return n.Loc }
func (n *Subscript) Location() *Location         { return n.Loc }
func (n *AlignmentTab) Location() *Location      { return n.Loc }
func (n *CommandParameter) Location() *Location  { return n.Loc }
func (n *ActiveCharacter) Location() *Location   { return n.Loc }
func (n *Ignore) Location() *Location            { return n.Loc }
func (n *Verb) Location() *Location              { return n.Loc }
func (n *Verbatim) Location() *Location          { return n.Loc }
func (n *Minted) Location() *Location            { return n.Loc }
func (n *Lstlisting) Location() *Location        { return n.Loc }
func (n *InlineMath) Location() *Location        { return n.Loc }
func (n *DisplayMath) Location() *Location       { return n.Loc }
func (n *MathCharacter) Location() *Location     { return n.Loc }
func (n *MathMatchingParen) Location() *Location { return n.Loc }

func (*TextString) isNode()        {}
func (*Command) isNode()           {}
func (*TextCommand) isNode()       {}
func (*LetCommand) isNode()        {}
func (*DefCommand) isNode()        {}
func (*Environment) isNode()       {}
func (*MathEnv) isNode()           {}
func (*MathEnvAligned) isNode()    {}
func (*Group) isNode()             {}
func (*OptionalArg) isNode()       {}
func (*Parbreak) isNode()          {}
func (*Superscript) isNode()       {}
func (*Subscript) isNode()         {}
func (*AlignmentTab) isNode()      {}
func (*CommandParameter) isNode()  {}
func (*ActiveCharacter) isNode()   {}
func (*Ignore) isNode()            {}
func (*Verb) isNode()              {}
func (*Verbatim) isNode()          {}
func (*Minted) isNode()            {}
func (*Lstlisting) isNode()        {}
func (*InlineMath) isNode()        {}
func (*DisplayMath) isNode()       {}
func (*MathCharacter) isNode()     {}
func (*MathMatchingParen) isNode() {}

// Children returns child nodes of the node: its content, followed by its arguments, followed by its single argument.
// The returned slice is a copy, the tree itself is never modified.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *TextString, *LetCommand, *Parbreak, *AlignmentTab, *CommandParameter, *ActiveCharacter, *Ignore,
		*Verb, *Verbatim, *MathCharacter:
		return nil
	case *Command:
		return join(n.Args)
	case *TextCommand:
		if n.Arg == nil {
			return nil
		}

		return []Node{n.Arg}
	case *DefCommand:
		return join(n.Args)
	case *Environment:
		return join(n.Content, n.Args)
	case *MathEnv:
		return join(n.Content, n.Args)
	case *MathEnvAligned:
		return join(n.Content, n.Args)
	case *Group:
		return join(n.Content)
	case *OptionalArg:
		return join(n.Content)
	case *Superscript:
		return join(n.Content)
	case *Subscript:
		return join(n.Content)
	case *Minted:
		return join(n.Args)
	case *Lstlisting:
		if n.Arg == nil {
			return nil
		}

		return []Node{n.Arg}
	case *InlineMath:
		return join(n.Content)
	case *DisplayMath:
		return join(n.Content)
	case *MathMatchingParen:
		return join(n.Content)
	}

	return nil
}

func join(lists ...Nodes) []Node {
	size := 0
	for _, list := range lists {
		size += len(list)
	}

	if size == 0 {
		return nil
	}

	out := make([]Node, 0, size)
	for _, list := range lists {
		out = append(out, list...)
	}

	return out
}
