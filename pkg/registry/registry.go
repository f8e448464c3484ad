package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/textfilter/pkg/errors"
)

// Registry stores items by name and is safe for concurrent use
type Registry[T any] interface {
	// Register adds an item, failing if the name is taken
	Register(name string, item T) error

	// Get retrieves an item
	Get(name string) (T, error)

	// GetOrCreate returns the item registered under name, building and
	// registering it with create when absent. created reports which happened.
	GetOrCreate(name string, create func() (T, error)) (item T, created bool, err error)

	// Remove removes an item
	Remove(name string) error

	// List returns all registered names, sorted
	List() []string

	Has(name string) bool

	// Clear removes every item
	Clear()

	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrDuplicateName, "item '%s' is already registered", name).
			WithDetail("name", name)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}

	return item, nil
}

func (r *registry[T]) GetOrCreate(name string, create func() (T, error)) (T, bool, error) {
	var zero T
	if name == "" {
		return zero, false, errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.RLock()
	item, exists := r.items[name]
	r.mu.RUnlock()
	if exists {
		return item, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another caller may have won the race between the two locks
	if item, exists := r.items[name]; exists {
		return item, false, nil
	}

	item, err := create()
	if err != nil {
		return zero, false, err
	}
	r.items[name] = item
	return item, true, nil
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}

	delete(r.items, name)
	return nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]T)
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
