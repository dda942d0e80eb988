package params

import "fmt"

// ID identifies one property in the catalog. An identifier is the position
// its handler was registered at, so the table and the catalog's declared
// ordering cannot drift apart silently; NewTable callers assert the final
// length against their declared count.
type ID uint16

// Table is the immutable, ordered handler array built once at startup.
// Lookup by identifier is O(1) array indexing; identifiers arriving from
// untrusted input are bounds-checked before indexing. A Table is read-only
// after construction and safe to share across goroutines.
type Table struct {
	handlers []Handler
	byKey    map[string]ID
	maxSize  int
}

// NewTable builds a table from handlers in registration order. Each
// handler's identifier equals its argument position. Duplicate names or
// keys and handlers not built with NewHandler are rejected.
func NewTable(handlers ...Handler) (*Table, error) {
	t := &Table{
		handlers: make([]Handler, len(handlers)),
		byKey:    make(map[string]ID, len(handlers)),
	}
	seen := make(map[string]bool, len(handlers))
	for i, h := range handlers {
		if h.size == 0 || h.validate == nil {
			return nil, fmt.Errorf("handler %d: %w", i, ErrZeroHandler)
		}
		if seen[h.name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, h.name)
		}
		seen[h.name] = true
		if _, ok := t.byKey[h.key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, h.key)
		}
		t.byKey[h.key] = ID(i)
		if h.size > t.maxSize {
			t.maxSize = h.size
		}
		t.handlers[i] = h
	}
	return t, nil
}

// Len returns the number of registered properties.
func (t *Table) Len() int { return len(t.handlers) }

// MaxSize returns the byte size of the largest native representation in
// the catalog. Store slots are sized to it.
func (t *Table) MaxSize() int { return t.maxSize }

// Handler returns the handler for id, or ErrIdentifierOutOfRange when id
// has no catalog entry.
func (t *Table) Handler(id ID) (*Handler, error) {
	if int(id) >= len(t.handlers) {
		return nil, ErrIdentifierOutOfRange
	}
	return &t.handlers[id], nil
}

// Lookup resolves an external addressing key to its identifier.
func (t *Table) Lookup(key string) (ID, error) {
	id, ok := t.byKey[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return id, nil
}
