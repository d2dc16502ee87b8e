package latex

import "strings"

// PlainText extracts text from nodes, dropping all markup: text strings are joined with a single space.
// Math characters and verbatim content are not text and are skipped.
func PlainText(nodes []Node) string {
	var words []string
	walk(nodes, nil, func(node Node, _ *FindResult[Node]) {
		if t, ok := node.(*TextString); ok {
			words = append(words, t.Content)
		}
	})

	return strings.Join(words, " ")
}
