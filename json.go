package latex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownKind is returned when decoding a node or AST with unsupported "kind".
var ErrUnknownKind = errors.New("unknown node kind")

// UnmarshalNode decodes a single node from JSON produced by the parser, the variant is selected by "kind" field.
func UnmarshalNode(data []byte) (Node, error) {
	var head struct {
		Kind Kind `json:"kind"`
	}

	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("unable to read node kind: %w", err)
	}

	node, err := newNode(head.Kind)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, node); err != nil {
		return nil, fmt.Errorf("unable to decode %s node: %w", head.Kind, err)
	}

	return node, nil
}

// UnmarshalNodes decodes JSON array of nodes.
func UnmarshalNodes(data []byte) ([]Node, error) {
	var nodes Nodes
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}

	return nodes, nil
}

// UnmarshalAST decodes a parsed document, either "ast.root" or "ast.preamble".
func UnmarshalAST(data []byte) (LatexAst, error) {
	var head struct {
		Kind AstKind `json:"kind"`
	}

	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("unable to read ast kind: %w", err)
	}

	var ast LatexAst
	switch head.Kind {
	case KindAstRoot:
		ast = &AstRoot{}
	case KindAstPreamble:
		ast = &AstPreamble{}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, head.Kind)
	}

	if err := json.Unmarshal(data, ast); err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", head.Kind, err)
	}

	return ast, nil
}

// DecodeAST reads a parsed document from r.
func DecodeAST(r io.Reader) (LatexAst, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return UnmarshalAST(data)
}

func newNode(kind Kind) (Node, error) {
	switch kind {
	case KindTextString:
		return &TextString{}, nil
	case KindCommand:
		return &Command{}, nil
	case KindTextCommand:
		return &TextCommand{}, nil
	case KindLetCommand:
		return &LetCommand{}, nil
	case KindDefCommand:
		return &DefCommand{}, nil
	case KindEnvironment:
		return &Environment{}, nil
	case KindMathEnv:
		return &MathEnv{}, nil
	case KindMathEnvAligned:
		return &MathEnvAligned{}, nil
	case KindGroup:
		return &Group{}, nil
	case KindOptionalArg:
		return &OptionalArg{}, nil
	case KindParbreak:
		return &Parbreak{}, nil
	case KindSuperscript:
		return &Superscript{}, nil
	case KindSubscript:
		return &Subscript{}, nil
	case KindAlignmentTab:
		return &AlignmentTab{}, nil
	case KindCommandParameter:
		return &CommandParameter{}, nil
	case KindActiveCharacter:
		return &ActiveCharacter{}, nil
	case KindIgnore:
		return &Ignore{}, nil
	case KindVerb:
		return &Verb{}, nil
	case KindVerbatim:
		return &Verbatim{}, nil
	case KindMinted:
		return &Minted{}, nil
	case KindLstlisting:
		return &Lstlisting{}, nil
	case KindInlineMath:
		return &InlineMath{}, nil
	case KindDisplayMath:
		return &DisplayMath{}, nil
	case KindMathCharacter:
		return &MathCharacter{}, nil
	case KindMathMatchingParen:
		return &MathMatchingParen{}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// UnmarshalJSON decodes array of nodes of any kind.
func (ns *Nodes) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	nodes := make(Nodes, 0, len(raw))
	for index, item := range raw {
		node, err := UnmarshalNode(item)
		if err != nil {
			return fmt.Errorf("node #%d: %w", index, err)
		}

		nodes = append(nodes, node)
	}

	*ns = nodes
	return nil
}

// withKind encodes v, a struct, as JSON object and puts "kind" field in front of its fields
func withKind[K ~string](kind K, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	head, err := json.Marshal(kind)
	if err != nil {
		return nil, err
	}

	out := append([]byte(`{"kind":`), head...)
	if len(body) > 2 {
		out = append(out, ',')
	}

	return append(out, body[1:]...), nil
}

func (n *TextString) MarshalJSON() ([]byte, error) {
	type plain TextString
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Command) MarshalJSON() ([]byte, error) {
	type plain Command
	return withKind(n.Kind(), (*plain)(n))
}

func (n *TextCommand) MarshalJSON() ([]byte, error) {
	type plain TextCommand
	return withKind(n.Kind(), (*plain)(n))
}

func (n *LetCommand) MarshalJSON() ([]byte, error) {
	type plain LetCommand
	return withKind(n.Kind(), (*plain)(n))
}

func (n *DefCommand) MarshalJSON() ([]byte, error) {
	type plain DefCommand
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Environment) MarshalJSON() ([]byte, error) {
	type plain Environment
	return withKind(n.Kind(), (*plain)(n))
}

func (n *MathEnv) MarshalJSON() ([]byte, error) {
	type plain MathEnv
	return withKind(n.Kind(), (*plain)(n))
}

func (n *MathEnvAligned) MarshalJSON() ([]byte, error) {
	type plain MathEnvAligned
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Group) MarshalJSON() ([]byte, error) {
	type plain Group
	return withKind(n.Kind(), (*plain)(n))
}

func (n *OptionalArg) MarshalJSON() ([]byte, error) {
	type plain OptionalArg
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Parbreak) MarshalJSON() ([]byte, error) {
	type plain Parbreak
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Superscript) MarshalJSON() ([]byte, error) {
	type plain Superscript
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Subscript) MarshalJSON() ([]byte, error) {
	type plain Subscript
	return withKind(n.Kind(), (*plain)(n))
}

func (n *AlignmentTab) MarshalJSON() ([]byte, error) {
	type plain AlignmentTab
	return withKind(n.Kind(), (*plain)(n))
}

func (n *CommandParameter) MarshalJSON() ([]byte, error) {
	type plain CommandParameter
	return withKind(n.Kind(), (*plain)(n))
}

func (n *ActiveCharacter) MarshalJSON() ([]byte, error) {
	type plain ActiveCharacter
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Ignore) MarshalJSON() ([]byte, error) {
	type plain Ignore
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Verb) MarshalJSON() ([]byte, error) {
	type plain Verb
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Verbatim) MarshalJSON() ([]byte, error) {
	type plain Verbatim
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Minted) MarshalJSON() ([]byte, error) {
	type plain Minted
	return withKind(n.Kind(), (*plain)(n))
}

func (n *Lstlisting) MarshalJSON() ([]byte, error) {
	type plain Lstlisting
	return withKind(n.Kind(), (*plain)(n))
}

func (n *InlineMath) MarshalJSON() ([]byte, error) {
	type plain InlineMath
	return withKind(n.Kind(), (*plain)(n))
}

func (n *DisplayMath) MarshalJSON() ([]byte, error) {
	type plain DisplayMath
	return withKind(n.Kind(), (*plain)(n))
}

func (n *MathCharacter) MarshalJSON() ([]byte, error) {
	type plain MathCharacter
	return withKind(n.Kind(), (*plain)(n))
}

func (n *MathMatchingParen) MarshalJSON() ([]byte, error) {
	type plain MathMatchingParen
	return withKind(n.Kind(), (*plain)(n))
}

func (a *AstRoot) MarshalJSON() ([]byte, error) {
	type plain AstRoot
	return withKind(a.Kind(), (*plain)(a))
}

func (a *AstPreamble) MarshalJSON() ([]byte, error) {
	type plain AstPreamble
	return withKind(a.Kind(), (*plain)(a))
}

func (c Comment) MarshalJSON() ([]byte, error) {
	type plain Comment
	return withKind("comment", plain(c))
}
