package filter

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Mode selects which eligibility axis gates a rule during Execute
type Mode int

const (
	// Prose filters ordinary message text
	Prose Mode = iota
	// Links filters link-like substrings; rules must opt in with AppliesToLinks
	Links
)

// String returns the lower-case mode name
func (m Mode) String() string {
	switch m {
	case Prose:
		return "prose"
	case Links:
		return "links"
	default:
		return "unknown"
	}
}

// ParseMode parses "prose" or "links"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "prose", "":
		return Prose, nil
	case "links", "link":
		return Links, nil
	default:
		return Prose, fmt.Errorf("unknown mode: %s", s)
	}
}

// eligible decides whether r runs in mode. Prose mode does not look at
// AppliesToLinks.
func eligible(r *Rule, mode Mode) bool {
	if !r.active {
		return false
	}
	if mode == Links && !r.appliesToLinks {
		return false
	}
	return true
}

// Execute runs every eligible rule over input in stored order and returns
// the final text. limit caps the output of each global rule in runes; it
// does not cap growth across rules, see SetChainBudget for that.
func (s *RuleSet) Execute(input string, mode Mode, limit int) string {
	start := time.Now()
	text := input

	observer := s.observer
	if observer == nil {
		observer = nopObserver{}
	}

	for _, r := range s.rules {
		if !eligible(r, mode) {
			s.logger.Trace().Str("rule", r.name).Stringer("mode", mode).Msg("Rule skipped")
			continue
		}

		res := r.apply(text, limit)
		observer.RuleApplied(r.name, res.replacements > 0)
		if res.truncated {
			s.logger.Debug().Str("rule", r.name).Int("limit", limit).Msg("Output length limit reached")
			observer.OutputTruncated(r.name)
		}
		if res.workLimitHit {
			s.logger.Debug().Str("rule", r.name).Dur("timeout", MatchTimeout).Msg("Match work limit reached")
			observer.WorkLimitExceeded(r.name)
		}

		if s.chainBudget > 0 && utf8.RuneCountInString(res.text) > s.chainBudget {
			s.logger.Debug().Str("rule", r.name).Int("budget", s.chainBudget).Msg("Chain budget exceeded")
			observer.ChainBudgetExceeded(r.name)
			break
		}
		text = res.text
	}

	observer.Executed(mode, time.Since(start))
	return text
}
