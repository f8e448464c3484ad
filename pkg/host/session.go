package host

import (
	"sync"

	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
	"github.com/arthur-debert/textfilter/pkg/logging"
	"github.com/arthur-debert/textfilter/pkg/records"
	"github.com/rs/zerolog"
)

// DefaultLengthLimit is the per-rule output limit used when Options leaves
// LengthLimit at zero
const DefaultLengthLimit = 1000

// Options configures a Session
type Options struct {
	// LengthLimit caps the output of each rule, in characters
	LengthLimit int
	// ChainBudget caps the output of the whole chain; 0 disables it
	ChainBudget int
	// Observer receives execution events, typically *metrics.Metrics
	Observer filter.Observer
}

func (o Options) lengthLimit() int {
	if o.LengthLimit <= 0 {
		return DefaultLengthLimit
	}
	return o.LengthLimit
}

// Session serializes access to one RuleSet
type Session struct {
	mu     sync.Mutex
	set    *filter.RuleSet
	limit  int
	logger zerolog.Logger
}

// NewSession builds a session from recs. Construction is all or nothing.
func NewSession(recs []records.Record, opts Options) (*Session, error) {
	set, err := records.FromRecords(recs)
	if err != nil {
		return nil, err
	}
	set.SetChainBudget(opts.ChainBudget)
	set.SetObserver(opts.Observer)

	s := &Session{
		set:    set,
		limit:  opts.lengthLimit(),
		logger: logging.GetLogger("host.session"),
	}
	s.logger.Debug().Int("rules", set.Len()).Int("limit", s.limit).Msg("Session created")
	return s, nil
}

// NewSessionFromLoose is NewSession for records the host has not decoded,
// such as the result of unmarshalling JSON into an interface{}
func NewSessionFromLoose(v interface{}, opts Options) (*Session, error) {
	recs, err := records.DecodeLoose(v)
	if err != nil {
		return nil, err
	}
	return NewSession(recs, opts)
}

// Execute filters text with the session's length limit
func (s *Session) Execute(text string, mode filter.Mode) string {
	return s.ExecuteWithLimit(text, mode, s.limit)
}

// Limit returns the per-rule length limit Execute uses
func (s *Session) Limit() int {
	return s.limit
}

// ExecuteWithLimit filters text with an explicit per-rule length limit
func (s *Session) ExecuteWithLimit(text string, mode filter.Mode, limit int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Execute(text, mode, limit)
}

// Pack returns the current rules as records
func (s *Session) Pack() []records.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.Pack(s.set)
}

// Len returns the number of rules
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Len()
}

// Add appends a rule built from rec
func (s *Session) Add(rec records.Record) Result {
	rule, err := rec.Rule()
	if err != nil {
		return failed(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.set.Add(rule); err != nil {
		return failed(err)
	}
	return ok()
}

// AddLoose is Add for a record the host has not decoded
func (s *Session) AddLoose(v interface{}) Result {
	recs, err := records.DecodeLoose([]interface{}{v})
	if err != nil {
		return failed(err)
	}
	return s.Add(recs[0])
}

// Update applies changes, keyed by record field name, to the named rule.
// Either every change applies or none does.
func (s *Session) Update(name string, changes map[string]interface{}) Result {
	u, err := records.ParseUpdate(changes)
	if err != nil {
		return failed(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.set.Update(name, u); err != nil {
		return failed(err)
	}
	return ok()
}

// Remove deletes the named rule
func (s *Session) Remove(name string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set.Remove(name) {
		return failed(errors.Newf(errors.ErrNotFound, "rule %q not found", name))
	}
	return ok()
}

// Move swaps the rules at positions from and to
func (s *Session) Move(from, to int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.set.Move(from, to); err != nil {
		return failed(err)
	}
	return ok()
}

// ValidatePattern reports whether source would compile as a rule pattern
func ValidatePattern(source string) Result {
	if err := filter.ValidatePattern(source); err != nil {
		return failed(err)
	}
	return ok()
}

// EscapeLiteral returns a pattern that matches text literally
func EscapeLiteral(text string) string {
	return filter.EscapeLiteral(text)
}
