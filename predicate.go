package latex

import "slices"

// Predicate tells if node matches a condition. Predicates must not modify the node.
type Predicate func(Node) bool

// Is makes a predicate which matches nodes of type T satisfying pred, nil pred matches any node of type T.
func Is[T Node](pred func(T) bool) Predicate {
	return func(node Node) bool {
		n, ok := node.(T)
		return ok && (pred == nil || pred(n))
	}
}

// OfKind matches nodes of any of the given kinds.
func OfKind(kinds ...Kind) Predicate {
	return func(node Node) bool {
		return slices.Contains(kinds, node.Kind())
	}
}

func Not(pred Predicate) Predicate {
	return func(node Node) bool {
		return !pred(node)
	}
}

func And(preds ...Predicate) Predicate {
	return func(node Node) bool {
		for _, pred := range preds {
			if !pred(node) {
				return false
			}
		}

		return true
	}
}

func Or(preds ...Predicate) Predicate {
	return func(node Node) bool {
		for _, pred := range preds {
			if pred(node) {
				return true
			}
		}

		return false
	}
}

// IsCommandNamed matches commands by name, without leading backslash, for example: IsCommandNamed("section").
func IsCommandNamed(names ...string) Predicate {
	return Is(func(c *Command) bool {
		return slices.Contains(names, c.Name)
	})
}

// IsEnvironmentNamed matches environments (including math environments) by name.
func IsEnvironmentNamed(names ...string) Predicate {
	return func(node Node) bool {
		name, ok := EnvironmentName(node)
		return ok && slices.Contains(names, name)
	}
}

// IsMathCharacterOf matches math characters with the given content.
func IsMathCharacterOf(content string) Predicate {
	return Is(func(m *MathCharacter) bool {
		return m.Content == content
	})
}

// EnvironmentName returns the name of a \begin{...}\end{...} node, the second value is false for other nodes.
func EnvironmentName(node Node) (string, bool) {
	switch n := node.(type) {
	case *Environment:
		return n.Name, true
	case *MathEnv:
		return n.Name, true
	case *MathEnvAligned:
		return n.Name, true
	case *Verbatim:
		return n.Name, true
	case *Minted:
		return n.Name, true
	case *Lstlisting:
		return n.Name, true
	default:
		return "", false
	}
}
