package latex

// AstKind is the discriminator of a LatexAst.
type AstKind string

const (
	KindAstRoot     AstKind = "ast.root"
	KindAstPreamble AstKind = "ast.preamble"
)

// LatexAst is the top of a parsed document: either a complete document or a preamble-only parse.
//
//sumtype:decl
type LatexAst interface {
	Kind() AstKind
	Nodes() []Node
	Comments() []Comment
	isAst()
}

// Comment is a % comment, the parser keeps them aside from the content.
type Comment struct {
	Content string    `json:"content"`
	Loc     *Location `json:"location,omitempty"`
}

type AstRoot struct {
	Content Nodes     `json:"content"`
	Comment []Comment `json:"comment,omitempty"`
}

// AstPreamble is a parse that stopped after the preamble, Rest holds the unparsed remainder of the source.
type AstPreamble struct {
	Content Nodes     `json:"content"`
	Comment []Comment `json:"comment,omitempty"`
	Rest    string    `json:"rest"`
}

func (*AstRoot) Kind() AstKind     { return KindAstRoot }
func (*AstPreamble) Kind() AstKind { return KindAstPreamble }

func (a *AstRoot) Nodes() []Node     { return a.Content }
func (a *AstPreamble) Nodes() []Node { return a.Content }

func (a *AstRoot) Comments() []Comment     { return a.Comment }
func (a *AstPreamble) Comments() []Comment { return a.Comment }

func (*AstRoot) isAst()     {}
func (*AstPreamble) isAst() {}
