package latex

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var whitespaces = regexp.MustCompile("[ \n\t\r]+")

// KeyValue parses key-value parameters in this format: key=value, key=value, for example as used in
// \includegraphics or lstlisting optional argument. Values may be quoted with " or ', quotes inside of
// a quoted value are escaped with backslash. Parts without "=" are ignored.
func KeyValue(raw string) (map[string]string, error) {
	kv := map[string]string{}
	s := &kvScanner{runes: []rune(raw)}

	for !s.eof() {
		s.skipSpaces()

		key := strings.ToLower(s.until(func(r rune) bool { return r == '=' || r == ',' || unicode.IsSpace(r) }))
		s.skipSpaces()

		if key == "" || !s.accept('=') {
			s.skipPart()
			continue
		}

		s.skipSpaces()

		value, err := s.value()
		if err != nil {
			return nil, err
		}

		kv[key] = value
		s.skipPart()
	}

	return kv, nil
}

type kvScanner struct {
	runes []rune
	pos   int
}

func (s *kvScanner) eof() bool {
	return s.pos >= len(s.runes)
}

func (s *kvScanner) skipSpaces() {
	for !s.eof() && unicode.IsSpace(s.runes[s.pos]) {
		s.pos++
	}
}

// skipPart moves to the next part, right after next ","
func (s *kvScanner) skipPart() {
	for !s.eof() {
		r := s.runes[s.pos]
		s.pos++

		if r == ',' {
			return
		}
	}
}

func (s *kvScanner) accept(r rune) bool {
	if s.eof() || s.runes[s.pos] != r {
		return false
	}

	s.pos++
	return true
}

func (s *kvScanner) until(stop func(rune) bool) string {
	start := s.pos
	for !s.eof() && !stop(s.runes[s.pos]) {
		s.pos++
	}

	return string(s.runes[start:s.pos])
}

func (s *kvScanner) value() (string, error) {
	if s.eof() {
		return "", nil
	}

	quote := s.runes[s.pos]
	if quote != '"' && quote != '\'' {
		return s.until(func(r rune) bool { return r == ',' || unicode.IsSpace(r) }), nil
	}

	s.pos++

	var value []rune
	for !s.eof() {
		r := s.runes[s.pos]
		s.pos++

		if r == '\\' && !s.eof() && s.runes[s.pos] == quote {
			value = append(value, quote)
			s.pos++
			continue
		}

		if r == quote {
			return string(value), nil
		}

		value = append(value, r)
	}

	return "", errors.New("quoted value is not closed")
}

// KeyValue parses the optional argument as key-value list, see KeyValue function.
func (n *OptionalArg) KeyValue() (map[string]string, error) {
	return KeyValue(StringifyAll(n.Content, Options{}))
}

// ColumnSpec is a single column of a tabular.
type ColumnSpec struct {
	BorderLeft  bool   // | before the column
	BorderRight bool   // | after the column
	Align       string // c, l, r, or p, m, b for paragraph columns
	Width       string // width of a paragraph column, e.g. 3cm
}

// maxColumnRepeat caps the count of *{n}{...}
const maxColumnRepeat = 256

// ColumnSpecs parses the column spec of a tabular, for example "|c|l|p{3cm}|". Repeated columns like *{3}{c|}
// are expanded, decorations @{...}, !{...}, >{...} and <{...} are skipped.
func ColumnSpecs(raw string) []ColumnSpec {
	tokens := columnTokens([]rune(whitespaces.ReplaceAllString(raw, "")))

	var spec []ColumnSpec
	for i, tok := range tokens {
		if tok.rule {
			continue
		}

		spec = append(spec, ColumnSpec{
			BorderLeft:  i > 0 && tokens[i-1].rule,
			BorderRight: i < len(tokens)-1 && tokens[i+1].rule,
			Align:       tok.align,
			Width:       tok.width,
		})
	}

	return spec
}

// columnToken is either a vertical rule or a column
type columnToken struct {
	rule  bool
	align string
	width string
}

func columnTokens(runes []rune) []columnToken {
	var tokens []columnToken

	for pos := 0; pos < len(runes); {
		char := runes[pos]
		pos++

		switch char {
		case '|':
			tokens = append(tokens, columnToken{rule: true})
		case 'c', 'l', 'r':
			tokens = append(tokens, columnToken{align: string(char)})
		case 'p', 'm', 'b':
			var width []rune
			width, pos, _ = braced(runes, pos)
			tokens = append(tokens, columnToken{align: string(char), width: string(width)})
		case '@', '!', '>', '<':
			_, pos, _ = braced(runes, pos)
		case '*':
			var count, body []rune
			count, pos, _ = braced(runes, pos)
			body, pos, _ = braced(runes, pos)

			n, err := strconv.Atoi(string(count))
			if err != nil {
				continue
			}

			repeated := columnTokens(body)
			for i := 0; i < min(n, maxColumnRepeat); i++ {
				tokens = append(tokens, repeated...)
			}
		}
	}

	return tokens
}

// braced reads a {...} group at pos and returns its content and the position right after it
func braced(runes []rune, pos int) ([]rune, int, bool) {
	if pos >= len(runes) || runes[pos] != '{' {
		return nil, pos, false
	}

	depth := 0
	for i := pos; i < len(runes); i++ {
		switch runes[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return runes[pos+1 : i], i + 1, true
			}
		}
	}

	return runes[pos+1:], len(runes), false
}

// ColumnSpecs parses column spec of a tabular-like environment, which is its first mandatory argument.
func (n *Environment) ColumnSpecs() []ColumnSpec {
	for _, arg := range n.Args {
		if g, ok := arg.(*Group); ok {
			return ColumnSpecs(StringifyAll(g.Content, Options{}))
		}
	}

	return nil
}
