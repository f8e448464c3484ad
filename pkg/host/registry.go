package host

import (
	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
	"github.com/arthur-debert/textfilter/pkg/logging"
	"github.com/arthur-debert/textfilter/pkg/records"
	"github.com/arthur-debert/textfilter/pkg/registry"
)

// Registry holds one Session per room. Every session it creates shares the
// same Options.
type Registry struct {
	rooms registry.Registry[*Session]
	opts  Options
}

// NewRegistry creates an empty room registry
func NewRegistry(opts Options) *Registry {
	return &Registry{
		rooms: registry.New[*Session](),
		opts:  opts,
	}
}

// Open returns the session for room, creating it from recs if the room has
// none yet. recs is ignored for an existing room.
func (r *Registry) Open(room string, recs []records.Record) (*Session, error) {
	s, created, err := r.rooms.GetOrCreate(room, func() (*Session, error) {
		return NewSession(recs, r.opts)
	})
	if err != nil {
		return nil, err
	}
	if created {
		logger := logging.WithFields(map[string]interface{}{
			"component": "host.registry",
			"room":      room,
			"rules":     s.Len(),
		})
		logger.Debug().Msg("Room opened")
	}
	return s, nil
}

// Session returns the session for room
func (r *Registry) Session(room string) (*Session, bool) {
	s, err := r.rooms.Get(room)
	if err != nil {
		return nil, false
	}
	return s, true
}

// Execute filters text with the rules of room
func (r *Registry) Execute(room, text string, mode filter.Mode) (string, error) {
	s, ok := r.Session(room)
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "room %q has no rules", room).
			WithDetail("room", room)
	}
	return s.Execute(text, mode), nil
}

// Close drops the session for room and reports whether there was one
func (r *Registry) Close(room string) bool {
	return r.rooms.Remove(room) == nil
}

// Rooms returns the open rooms, sorted
func (r *Registry) Rooms() []string {
	return r.rooms.List()
}
