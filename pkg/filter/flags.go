package filter

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Flag characters understood by NewRule and WithFlags
const (
	FlagGlobal          = 'g'
	FlagCaseInsensitive = 'i'
	FlagMultiline       = 'm'
)

// ruleFlags is the parsed form of a flag string
type ruleFlags struct {
	global    bool
	caseless  bool
	multiline bool
}

func parseFlags(s string) ruleFlags {
	var f ruleFlags
	for _, c := range s {
		switch c {
		case FlagGlobal:
			f.global = true
		case FlagCaseInsensitive:
			f.caseless = true
		case FlagMultiline:
			f.multiline = true
		}
	}
	return f
}

// String renders the flags in canonical g, i, m order
func (f ruleFlags) String() string {
	var b strings.Builder
	if f.global {
		b.WriteRune(FlagGlobal)
	}
	if f.caseless {
		b.WriteRune(FlagCaseInsensitive)
	}
	if f.multiline {
		b.WriteRune(FlagMultiline)
	}
	return b.String()
}

func (f ruleFlags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f.caseless {
		opts |= regexp2.IgnoreCase
	}
	if f.multiline {
		opts |= regexp2.Multiline
	}
	return opts
}

// CanonicalFlags parses s and renders it back in canonical order, dropping
// unknown and repeated characters.
func CanonicalFlags(s string) string {
	return parseFlags(s).String()
}
