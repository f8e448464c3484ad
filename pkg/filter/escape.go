package filter

import (
	"strings"

	"github.com/arthur-debert/textfilter/pkg/errors"
)

// ValidatePattern reports whether source compiles as a rule pattern. The
// returned error carries the engine's diagnostic.
func ValidatePattern(source string) error {
	return ValidatePatternWithFlags(source, "")
}

// ValidatePatternWithFlags is ValidatePattern under a flag string
func ValidatePatternWithFlags(source, flags string) error {
	if _, err := compile(source, parseFlags(flags)); err != nil {
		return errors.Wrap(err, errors.ErrCompile, "invalid pattern").
			WithDetail("source", source)
	}
	return nil
}

// EscapeLiteral returns a pattern matching text literally. Every ASCII byte
// other than letters, digits and underscore is backslash-escaped; NUL becomes
// \x00 and multi-byte UTF-8 sequences pass through untouched.
func EscapeLiteral(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == 0:
			b.WriteString(`\x00`)
			continue
		case c >= 0x80,
			c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '_':
		default:
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
