package filter

import (
	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/logging"
	"github.com/rs/zerolog"
)

// RuleSet is an ordered collection of rules with unique names. Order matters:
// Execute feeds the output of each rule into the next.
//
// The zero value is an empty set that logs nothing. A RuleSet is not safe for
// concurrent use.
type RuleSet struct {
	rules       []*Rule
	chainBudget int
	observer    Observer
	logger      zerolog.Logger
}

// NewRuleSet creates an empty rule set
func NewRuleSet() *RuleSet {
	return &RuleSet{
		observer: nopObserver{},
		logger:   logging.GetLogger("filter.ruleset"),
	}
}

// SetObserver installs o to receive execution events. A nil o disables
// observation.
func (s *RuleSet) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	s.observer = o
}

// SetChainBudget caps the output length across the whole chain. After every
// rule the result is checked against n; a rule whose output exceeds it is
// discarded and no further rules run. Zero or less disables the budget.
func (s *RuleSet) SetChainBudget(n int) {
	if n < 0 {
		n = 0
	}
	s.chainBudget = n
}

// ChainBudget returns the configured chain budget, 0 when disabled
func (s *RuleSet) ChainBudget() int {
	return s.chainBudget
}

// Len returns the number of rules
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Rules returns the rules in execution order. The slice is a copy; the rules
// themselves are immutable.
func (s *RuleSet) Rules() []*Rule {
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Names returns rule names in execution order
func (s *RuleSet) Names() []string {
	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.name
	}
	return names
}

func (s *RuleSet) indexOf(name string) int {
	for i, r := range s.rules {
		if r.name == name {
			return i
		}
	}
	return -1
}

// Add appends rule to the end of the set
func (s *RuleSet) Add(rule *Rule) error {
	if rule == nil {
		return errors.New(errors.ErrInvalidInput, "rule cannot be nil")
	}
	if s.indexOf(rule.name) >= 0 {
		return errors.Newf(errors.ErrDuplicateName, "rule %q already exists", rule.name).
			WithDetail("rule", rule.name)
	}

	s.rules = append(s.rules, rule)
	s.logger.Debug().Str("rule", rule.name).Int("count", len(s.rules)).Msg("Rule added")
	return nil
}

// Find looks a rule up by name
func (s *RuleSet) Find(name string) (*Rule, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return s.rules[i], true
}

// Update applies u to the named rule. The replacement rule is built in full
// before it is swapped in, so a failing update leaves the set untouched.
func (s *RuleSet) Update(name string, u RuleUpdate) (*Rule, error) {
	i := s.indexOf(name)
	if i < 0 {
		return nil, errors.Newf(errors.ErrNotFound, "rule %q not found", name).
			WithDetail("rule", name)
	}

	updated, err := s.rules[i].Update(u)
	if err != nil {
		return nil, err
	}

	s.rules[i] = updated
	s.logger.Debug().Str("rule", name).Msg("Rule updated")
	return updated, nil
}

// Remove deletes the named rule and reports whether it existed
func (s *RuleSet) Remove(name string) bool {
	i := s.indexOf(name)
	if i < 0 {
		return false
	}

	s.rules = append(s.rules[:i], s.rules[i+1:]...)
	s.logger.Debug().Str("rule", name).Int("count", len(s.rules)).Msg("Rule removed")
	return true
}

// Move swaps the rules at positions from and to
func (s *RuleSet) Move(from, to int) error {
	n := len(s.rules)
	for _, idx := range []int{from, to} {
		if idx < 0 || idx >= n {
			return errors.Newf(errors.ErrIndexOutOfRange, "index %d out of range [0, %d)", idx, n).
				WithDetail("from", from).
				WithDetail("to", to)
		}
	}

	s.rules[from], s.rules[to] = s.rules[to], s.rules[from]
	s.logger.Debug().Int("from", from).Int("to", to).Msg("Rules swapped")
	return nil
}
