package filter

import (
	"strings"
	"time"

	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds the wall-clock time of a single match attempt, which
// regexp2 enforces while backtracking. It is applied to every compiled rule
// and cannot be changed per call.
const MatchTimeout = 250 * time.Millisecond

// Rule is one named pattern/replacement pair. Rules are immutable: the With
// methods return a modified copy and leave the receiver untouched.
type Rule struct {
	name           string
	source         string
	replacement    string
	flags          ruleFlags
	active         bool
	appliesToLinks bool

	re   *regexp2.Regexp
	tmpl template
}

// RuleUpdate lists field changes for RuleSet.Update. Nil fields are left as
// they are.
type RuleUpdate struct {
	Source         *string
	Flags          *string
	Replacement    *string
	Active         *bool
	AppliesToLinks *bool
}

// IsEmpty reports whether the update changes nothing
func (u RuleUpdate) IsEmpty() bool {
	return u.Source == nil && u.Flags == nil && u.Replacement == nil &&
		u.Active == nil && u.AppliesToLinks == nil
}

// NewRule compiles source under flags and returns a ready rule. An invalid
// pattern, or a replacement that refers to a group the pattern lacks, yields
// an ErrCompile error and no rule.
func NewRule(name, source, flags, replacement string, active, appliesToLinks bool) (*Rule, error) {
	if name == "" {
		return nil, errors.New(errors.ErrFieldValidation, "rule name cannot be empty")
	}

	f := parseFlags(flags)
	re, err := compile(source, f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCompile, "rule %q has an invalid pattern", name).
			WithDetail("rule", name)
	}

	r := &Rule{
		name:           name,
		source:         source,
		flags:          f,
		active:         active,
		appliesToLinks: appliesToLinks,
		re:             re,
	}
	if err := r.setReplacement(replacement); err != nil {
		return nil, err
	}
	return r, nil
}

func compile(source string, f ruleFlags) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(source, f.options())
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = MatchTimeout
	return re, nil
}

func (r *Rule) setReplacement(replacement string) error {
	tmpl := parseTemplate(replacement)
	if group, ok := tmpl.validate(r.re); !ok {
		return errors.Newf(errors.ErrCompile,
			"rule %q replacement refers to group \\%d which the pattern does not define", r.name, group).
			WithDetail("rule", r.name)
	}
	r.replacement = replacement
	r.tmpl = tmpl
	return nil
}

// Name returns the rule's identifier
func (r *Rule) Name() string { return r.name }

// Source returns the pattern source as supplied
func (r *Rule) Source() string { return r.source }

// Replacement returns the replacement template
func (r *Rule) Replacement() string { return r.replacement }

// Flags returns the flag string in canonical g, i, m order
func (r *Rule) Flags() string { return r.flags.String() }

// Global reports whether every match is replaced rather than only the first
func (r *Rule) Global() bool { return r.flags.global }

// Active reports whether the rule runs at all
func (r *Rule) Active() bool { return r.active }

// AppliesToLinks reports whether the rule runs in Links mode
func (r *Rule) AppliesToLinks() bool { return r.appliesToLinks }

// WithSource returns a copy of r using a new pattern
func (r *Rule) WithSource(source string) (*Rule, error) {
	return r.Update(RuleUpdate{Source: &source})
}

// WithFlags returns a copy of r recompiled under new flags
func (r *Rule) WithFlags(flags string) (*Rule, error) {
	return r.Update(RuleUpdate{Flags: &flags})
}

// WithReplacement returns a copy of r using a new replacement template
func (r *Rule) WithReplacement(replacement string) (*Rule, error) {
	return r.Update(RuleUpdate{Replacement: &replacement})
}

// WithActive returns a copy of r with the active toggle set
func (r *Rule) WithActive(active bool) *Rule {
	c := *r
	c.active = active
	return &c
}

// WithAppliesToLinks returns a copy of r with the links toggle set
func (r *Rule) WithAppliesToLinks(appliesToLinks bool) *Rule {
	c := *r
	c.appliesToLinks = appliesToLinks
	return &c
}

// Update returns a copy of r with every change in u applied. On error no copy
// is returned; r itself is never modified.
func (r *Rule) Update(u RuleUpdate) (*Rule, error) {
	source, flags, replacement := r.source, r.flags.String(), r.replacement
	active, links := r.active, r.appliesToLinks
	if u.Source != nil {
		source = *u.Source
	}
	if u.Flags != nil {
		flags = *u.Flags
	}
	if u.Replacement != nil {
		replacement = *u.Replacement
	}
	if u.Active != nil {
		active = *u.Active
	}
	if u.AppliesToLinks != nil {
		links = *u.AppliesToLinks
	}

	// Only recompile when the pattern or its options change
	if u.Source != nil || u.Flags != nil {
		return NewRule(r.name, source, flags, replacement, active, links)
	}

	c := *r
	c.active = active
	c.appliesToLinks = links
	if u.Replacement != nil {
		if err := c.setReplacement(replacement); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Apply runs the rule over input. Non-global rules replace the first match
// only. Global rules replace every non-overlapping match until the output
// would grow past limit runes, after which the rest of the input is copied
// unchanged. matched reports whether any replacement happened.
func (r *Rule) Apply(input string, limit int) (output string, matched bool) {
	res := r.apply(input, limit)
	return res.text, res.replacements > 0
}

// applyResult records what happened during one Apply call
type applyResult struct {
	text         string
	replacements int
	truncated    bool
	workLimitHit bool
}

func (r *Rule) apply(input string, limit int) applyResult {
	runes := []rune(input)
	if r.flags.global {
		return r.replaceAll(runes, limit)
	}
	return r.replaceFirst(input, runes)
}

func (r *Rule) replaceFirst(input string, runes []rune) applyResult {
	m, err := r.re.FindRunesMatchStartingAt(runes, 0)
	if err != nil {
		return applyResult{text: input, workLimitHit: true}
	}
	if m == nil {
		return applyResult{text: input}
	}

	expanded, _ := r.tmpl.expand(m)
	var b strings.Builder
	b.Grow(len(input) + len(expanded))
	b.WriteString(string(runes[:m.Index]))
	b.WriteString(expanded)
	b.WriteString(string(runes[m.Index+m.Length:]))
	return applyResult{text: b.String(), replacements: 1}
}

func (r *Rule) replaceAll(runes []rune, limit int) applyResult {
	var (
		b      strings.Builder
		res    applyResult
		size   int // runes written to b
		copied int // input consumed into b
		pos    int // next search position
	)

	for pos <= len(runes) {
		m, err := r.re.FindRunesMatchStartingAt(runes, pos)
		if err != nil {
			res.workLimitHit = true
			break
		}
		if m == nil {
			break
		}

		expanded, expandedSize := r.tmpl.expand(m)
		gap := m.Index - copied
		if size+gap+expandedSize > limit {
			res.truncated = true
			break
		}

		b.WriteString(string(runes[copied:m.Index]))
		b.WriteString(expanded)
		size += gap + expandedSize
		res.replacements++

		end := m.Index + m.Length
		copied = end
		pos = end
		if m.Length == 0 {
			// Step past one character so an empty match cannot repeat
			pos++
		}
	}

	if copied < len(runes) {
		b.WriteString(string(runes[copied:]))
	}
	res.text = b.String()
	return res
}
