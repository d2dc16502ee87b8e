package latex

// NoParent is the parent of matches produced by a root pattern.
type NoParent struct{}

// MatchOptions controls how the root of a pattern chain is matched.
type MatchOptions struct {
	// TraverseAll searches the root predicate at any depth, otherwise only the given nodes are tested.
	TraverseAll bool
}

// Match is a node matched by a pattern. Parent is the match of the enclosing pattern which produced this one,
// it is a *Match of the parent pattern for patterns created with Child and NoParent for root patterns.
type Match[T Node, P any] struct {
	Node   T
	Parent P
}

// Pattern is a chain of predicates, each link of the chain applies to direct children of nodes matched by the
// previous link. Patterns are immutable and may be reused for any number of trees.
type Pattern[T Node, P any] struct {
	pred   Predicate
	scopes func(nodes []Node, opts MatchOptions) []scope[P]
}

// scope is a sibling list to test a child pattern against, along with the parent match which owns it
type scope[P any] struct {
	parent P
	nodes  []Node
}

// NewPattern creates a root pattern matching nodes of type T accepted by pred, nil pred accepts any T.
func NewPattern[T Node](pred func(T) bool) *Pattern[T, NoParent] {
	return &Pattern[T, NoParent]{pred: Is(pred)}
}

// Child creates a pattern matching direct children of nodes matched by p. For example, optional arguments of
// \includegraphics commands:
//
//	p := latex.Child(latex.NewPattern(func(c *latex.Command) bool { return c.Name == "includegraphics" }),
//		func(*latex.OptionalArg) bool { return true })
func Child[C, T Node, P any](p *Pattern[T, P], pred func(C) bool) *Pattern[C, *Match[T, P]] {
	return &Pattern[C, *Match[T, P]]{
		pred:   Is(pred),
		scopes: func(nodes []Node, opts MatchOptions) []scope[*Match[T, P]] {
			var scopes []scope[*Match[T, P]]
			for _, m := range p.Match(nodes, opts) {
				scopes = append(scopes, scope[*Match[T, P]]{parent: m, nodes: Children(m.Node)})
			}

			return scopes
		},
	}
}

// Match evaluates the pattern chain against nodes. Results are ordered by parent match first, then by position
// of the node among its siblings.
func (p *Pattern[T, P]) Match(nodes []Node, opts MatchOptions) []*Match[T, P] {
	var matches []*Match[T, P]

	if p.scopes == nil && opts.TraverseAll {
		for _, r := range FindAll[Node](nodes, p.pred) {
			matches = append(matches, &Match[T, P]{Node: r.Node.(T)})
		}

		return matches
	}

	if p.scopes == nil {
		for _, node := range nodes {
			if p.pred(node) {
				matches = append(matches, &Match[T, P]{Node: node.(T)})
			}
		}

		return matches
	}

	for _, s := range p.scopes(nodes, opts) {
		for _, node := range s.nodes {
			if p.pred(node) {
				matches = append(matches, &Match[T, P]{Node: node.(T), Parent: s.parent})
			}
		}
	}

	return matches
}
