package filter

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// templatePart is either literal text or a reference to a capture group
type templatePart struct {
	literal string
	group   int // -1 for literal parts
}

// template is a parsed replacement string
type template struct {
	parts []templatePart
	// maxGroup is the highest group referenced, -1 when none
	maxGroup int
}

func parseTemplate(s string) template {
	t := template{maxGroup: -1}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.parts = append(t.parts, templatePart{literal: lit.String(), group: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			lit.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch {
		case next >= '0' && next <= '9':
			flush()
			g := int(next - '0')
			t.parts = append(t.parts, templatePart{group: g})
			if g > t.maxGroup {
				t.maxGroup = g
			}
			i++
		case next == '\\':
			lit.WriteByte('\\')
			i++
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return t
}

// validate checks that every referenced group exists in re
func (t template) validate(re *regexp2.Regexp) (missing int, ok bool) {
	if t.maxGroup <= 0 {
		return 0, true
	}
	known := make(map[int]bool)
	for _, n := range re.GetGroupNumbers() {
		known[n] = true
	}
	for _, p := range t.parts {
		if p.group > 0 && !known[p.group] {
			return p.group, false
		}
	}
	return 0, true
}

// expand renders the template for match m. The second value is the rune count
// of the result.
func (t template) expand(m *regexp2.Match) (string, int) {
	var b strings.Builder
	n := 0
	for _, p := range t.parts {
		if p.group < 0 {
			b.WriteString(p.literal)
			n += utf8.RuneCountInString(p.literal)
			continue
		}
		if p.group == 0 {
			b.WriteString(m.String())
			n += m.Length
			continue
		}
		g := m.GroupByNumber(p.group)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		b.WriteString(g.String())
		n += g.Length
	}
	return b.String(), n
}
