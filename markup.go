package bidual

import (
	"fmt"
	"strings"
	"unicode"
)

// span is a piece of label text set in a single face.
type span struct {
	Text   string
	Italic bool
	Sub    bool
}

var mathSymbols = map[string]string{
	"cong":  "≅",
	"to":    "→",
	"prime": "'",
}

// parseMarkup splits label markup into spans. Text between dollar signs is set in math mode, where letters are
// italic and other characters upright, _x or _{xy} is a subscript, and \name is one of a few symbols.
// Spaces are dropped in math mode.
func parseMarkup(s string) ([]span, error) {
	spans := []span{}
	add := func(text string, italic, sub bool) {
		if n := len(spans); 0 < n && spans[n-1].Italic == italic && spans[n-1].Sub == sub {
			spans[n-1].Text += text
			return
		}
		spans = append(spans, span{text, italic, sub})
	}

	rs := []rune(s)
	math := false
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '$' {
			math = !math
			continue
		} else if !math {
			add(string(r), false, false)
			continue
		}

		switch {
		case unicode.IsSpace(r):
		case r == '_':
			if i+1 == len(rs) || rs[i+1] == '$' {
				return nil, fmt.Errorf("%q: missing subscript at position %d", s, i)
			}
			i++
			var sub []rune
			if rs[i] == '{' {
				j := i + 1
				for j < len(rs) && rs[j] != '}' {
					j++
				}
				if j == len(rs) {
					return nil, fmt.Errorf("%q: unclosed brace at position %d", s, i)
				}
				sub = rs[i+1 : j]
				i = j
			} else {
				sub = rs[i : i+1]
			}
			for _, rsub := range sub {
				if !unicode.IsSpace(rsub) {
					add(string(rsub), unicode.IsLetter(rsub), true)
				}
			}
		case r == '\\':
			j := i + 1
			for j < len(rs) && unicode.IsLetter(rs[j]) {
				j++
			}
			name := string(rs[i+1 : j])
			sym, ok := mathSymbols[name]
			if !ok {
				return nil, fmt.Errorf("%q: unknown command \\%s", s, name)
			}
			add(sym, false, false)
			i = j - 1
		case r == '{' || r == '}':
			return nil, fmt.Errorf("%q: unexpected brace at position %d", s, i)
		default:
			add(string(r), unicode.IsLetter(r), false)
		}
	}
	if math {
		return nil, fmt.Errorf("%q: unclosed math mode", s)
	}
	return spans, nil
}

// plainText returns the markup without math delimiters and subscript syntax, e.g. J_X(X) for $J_X(X)$.
func plainText(spans []span) string {
	sb := strings.Builder{}
	for _, sp := range spans {
		if sp.Sub {
			sb.WriteString("_")
			if 1 < len([]rune(sp.Text)) {
				sb.WriteString("{" + sp.Text + "}")
				continue
			}
		}
		sb.WriteString(sp.Text)
	}
	return sb.String()
}
