package filter

import "time"

// Observer receives execution events from a RuleSet. Implementations must be
// cheap; they run inline on the Execute path.
type Observer interface {
	// RuleApplied is called for every eligible rule after it ran
	RuleApplied(rule string, matched bool)
	// OutputTruncated is called when a rule stopped at the length limit
	OutputTruncated(rule string)
	// WorkLimitExceeded is called when a match attempt ran out of time
	WorkLimitExceeded(rule string)
	// ChainBudgetExceeded is called when a rule's output broke the chain budget
	ChainBudgetExceeded(rule string)
	// Executed is called once per Execute call
	Executed(mode Mode, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) RuleApplied(string, bool)     {}
func (nopObserver) OutputTruncated(string)       {}
func (nopObserver) WorkLimitExceeded(string)     {}
func (nopObserver) ChainBudgetExceeded(string)   {}
func (nopObserver) Executed(Mode, time.Duration) {}
