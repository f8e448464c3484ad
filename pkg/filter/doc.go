// Package filter implements ordered pattern-substitution rules for untrusted text.
//
// A Rule pairs a compiled regular expression with a replacement template. A
// RuleSet runs its rules in stored order, feeding the output of each rule into
// the next one.
//
// # Bounded work
//
// Rules and input are both treated as hostile. Two limits keep a single call
// bounded no matter what the rule says:
//
//   - every compiled pattern carries MatchTimeout, so one match attempt cannot
//     backtrack forever. A timed out attempt ends the scan as if there were no
//     further match.
//   - global replacement stops once the next segment would push the output past
//     the caller's length limit. The untouched remainder of the input is
//     appended as-is.
//
// Neither limit is an error: Execute never fails on adversarial content.
//
// MatchTimeout is wall-clock time, not a count of backtracking steps, so
// whether an attempt near the bound is cut short depends on machine load.
// Output for such patterns can differ between runs. The length limit is
// exact.
//
// # Flags
//
// Flag strings use the characters g (global), i (case-insensitive) and m
// (multi-line). Unknown characters are ignored. Patterns are always matched
// rune by rune, so they are Unicode-aware regardless of flags.
//
// # Replacement templates
//
// \0 expands to the whole match, \1 through \9 to capture groups and \\ to a
// single backslash. Any other backslash is kept literally.
//
// # Concurrency
//
// Rules are immutable and safe to share. A RuleSet is not synchronized; callers
// that share one across goroutines must serialize access themselves.
package filter
