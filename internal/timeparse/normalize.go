package timeparse

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jparise/datesift/internal/corpus"
)

// fold maps full-width digits, letters and punctuation to their ASCII forms.
func fold(text string) string {
	return norm.NFKC.String(text)
}

// eliminateNoise drops non-breaking spaces and symbol noise and collapses
// whitespace.
func (p *Parser) eliminateNoise(text string) string {
	text = strings.ReplaceAll(strings.TrimSpace(text), "/n", " ")
	text = p.vocab.Apply(corpus.NoBreakSpace, text)
	text = p.vocab.Apply(corpus.SymbolNormal, text)
	text = p.vocab.Apply(corpus.Space, text)
	return strings.TrimSpace(text)
}

// unitize lowercases each space-separated word and rewrites known
// vocabulary to its canonical English form: "10月" → "october",
// "下午" → "pm". Thai month names tag the text as EraThai.
func (p *Parser) unitize(text string) (string, Era) {
	era := EraNone
	words := strings.Split(text, " ")
	for i, w := range words {
		w = strings.ToLower(w)
		if c, ok := p.vocab.Canonical(w); ok {
			if p.vocab.IsEra(w) {
				era = EraThai
			}
			w = c
		}
		words[i] = w
	}
	return strings.Join(words, " "), era
}

// chunks splits text on digit boundaries, then on spaces.
func (p *Parser) chunks(text string) []string {
	var out []string
	for _, part := range p.vocab.SplitNumeric(text) {
		out = append(out, strings.Split(part, " ")...)
	}
	return out
}

// joinChunks rejoins chunks with single spaces, skipping empty ones and
// keeping clock separators tight: "10", ":", "42" → "10:42".
func joinChunks(chunks []string) string {
	var b strings.Builder
	prev := ""
	for _, c := range chunks {
		if c == "" {
			continue
		}
		if prev != "" && c != ":" && prev != ":" {
			b.WriteByte(' ')
		}
		b.WriteString(c)
		prev = c
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isClock(word string) bool {
	if !strings.Contains(word, ":") {
		return false
	}
	if _, err := time.Parse("15:04:05", word); err == nil {
		return true
	}
	_, err := time.Parse("15:04", word)
	return err == nil
}

// reorderMeridian pulls a meridian next to its clock reading so the pair is
// read as one unit. When no clock reading is adjacent to a meridian, the
// meridians are dropped. Text without a clock reading is returned unchanged.
func reorderMeridian(text string) string {
	words := strings.Fields(text)
	clock, meridian := -1, -1
	for i, w := range words {
		if clock >= 0 && meridian >= 0 && abs(clock-meridian) == 1 {
			break
		}
		switch {
		case w == "am" || w == "pm":
			meridian = i
		case isClock(w):
			clock = i
		}
	}
	if clock < 0 {
		return text
	}
	if meridian >= 0 && abs(clock-meridian) == 1 {
		words[clock] = words[clock] + " " + words[meridian]
		words[meridian] = ""
		return strings.Join(words, " ")
	}
	for i, w := range words {
		if w == "am" || w == "pm" {
			words[i] = ""
		}
	}
	return strings.Join(words, " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func classify(r rune) Label {
	switch {
	case r >= '0' && r <= '9', r == ':':
		return Numeric
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return Characters
	default:
		return Invalid
	}
}

// tokenize groups consecutive characters of the same class and drops the
// Invalid runs.
func tokenize(text string) []Token {
	var tokens []Token
	var cur strings.Builder
	label := Invalid
	flush := func() {
		if cur.Len() > 0 && label != Invalid {
			tokens = append(tokens, Token{Text: cur.String(), Label: label})
		}
		cur.Reset()
	}
	for _, r := range text {
		if l := classify(r); l != label {
			flush()
			label = l
		}
		cur.WriteRune(r)
	}
	flush()
	return tokens
}
