package latex

// FindResult is a found node with the chain of its ancestors. Parent is nil for nodes at the top of the search.
type FindResult[T Node] struct {
	Node   T
	Parent *FindResult[Node]
}

// Ancestors lists ancestors of the found node, starting from the closest one.
func (r *FindResult[T]) Ancestors() []Node {
	var nodes []Node
	for p := r.Parent; p != nil; p = p.Parent {
		nodes = append(nodes, p.Node)
	}

	return nodes
}

// Depth is the number of ancestors of the found node.
func (r *FindResult[T]) Depth() (depth int) {
	for p := r.Parent; p != nil; p = p.Parent {
		depth++
	}

	return
}

// SequenceResult is a run of adjacent siblings matched by FindAllSequences, Parent is the chain of their owner.
type SequenceResult struct {
	Nodes  []Node
	Parent *FindResult[Node]
}

type Sequence1[T Node] struct {
	First  T
	Parent *FindResult[Node]
}

type Sequence2[T1, T2 Node] struct {
	First  T1
	Second T2
	Parent *FindResult[Node]
}

// FindAll walks nodes depth-first and returns every node of type T accepted by pred, in pre-order.
// Use FindAll[Node](nodes, nil) to list all nodes.
func FindAll[T Node](nodes []Node, pred func(T) bool) []*FindResult[T] {
	var found []*FindResult[T]

	match := Is(pred)
	walk(nodes, nil, func(node Node, parent *FindResult[Node]) {
		if match(node) {
			found = append(found, &FindResult[T]{Node: node.(T), Parent: parent})
		}
	})

	return found
}

// walk calls visit for every node in pre-order along with the chain of the node parents
func walk(nodes []Node, parent *FindResult[Node], visit func(Node, *FindResult[Node])) {
	for _, node := range nodes {
		visit(node, parent)
		walk(Children(node), &FindResult[Node]{Node: node, Parent: parent}, visit)
	}
}

// FindAllSequences looks for runs of adjacent siblings where i-th node matches i-th predicate. Every sibling list
// in the tree is searched, windows never cross levels. A window is reported only when all predicates match.
func FindAllSequences(nodes []Node, preds ...Predicate) []*SequenceResult {
	var found []*SequenceResult
	if len(preds) == 0 {
		return found
	}

	var search func(nodes []Node, parent *FindResult[Node])
	search = func(nodes []Node, parent *FindResult[Node]) {
		for i, node := range nodes {
			if window := matchWindow(nodes[i:], preds); window != nil {
				found = append(found, &SequenceResult{Nodes: window, Parent: parent})
			}

			search(Children(node), &FindResult[Node]{Node: node, Parent: parent})
		}
	}

	search(nodes, nil)
	return found
}

func matchWindow(nodes []Node, preds []Predicate) []Node {
	if len(nodes) < len(preds) {
		return nil
	}

	for i, pred := range preds {
		if !pred(nodes[i]) {
			return nil
		}
	}

	window := make([]Node, len(preds))
	copy(window, nodes)

	return window
}

// FindSequences1 is FindAllSequences with a single typed predicate.
func FindSequences1[T Node](nodes []Node, pred func(T) bool) []*Sequence1[T] {
	var found []*Sequence1[T]
	for _, r := range FindAllSequences(nodes, Is(pred)) {
		found = append(found, &Sequence1[T]{First: r.Nodes[0].(T), Parent: r.Parent})
	}

	return found
}

// FindSequences2 is FindAllSequences with two typed predicates, it finds pairs of adjacent siblings.
func FindSequences2[T1, T2 Node](nodes []Node, first func(T1) bool, second func(T2) bool) []*Sequence2[T1, T2] {
	var found []*Sequence2[T1, T2]
	for _, r := range FindAllSequences(nodes, Is(first), Is(second)) {
		found = append(found, &Sequence2[T1, T2]{First: r.Nodes[0].(T1), Second: r.Nodes[1].(T2), Parent: r.Parent})
	}

	return found
}

// FindNodeAt returns the innermost node containing the cursor, or nil if no node contains it.
func FindNodeAt(nodes []Node, at Cursor) *FindResult[Node] {
	return FindNodeAtFrom(nodes, at, nil)
}

// FindNodeAtFrom is FindNodeAt for nodes owned by parent. The first sibling containing the cursor is descended into,
// siblings after it are not considered. When none of nodes contains the cursor parent is returned as is.
func FindNodeAtFrom(nodes []Node, at Cursor, parent *FindResult[Node]) *FindResult[Node] {
	for _, node := range nodes {
		if at.In(node.Location()) {
			return FindNodeAtFrom(Children(node), at, &FindResult[Node]{Node: node, Parent: parent})
		}
	}

	return parent
}
