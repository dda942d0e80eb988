package params

// slot records occupancy for one property. The value bytes live in the
// store's single backing array.
type slot struct {
	n         int
	populated bool
}

// Store holds current values for every property in a table: one
// fixed-capacity byte region per identifier (sized to the catalog-wide
// maximum representation) plus occupancy metadata. All memory is allocated
// by NewStore; set/get/parse/format paths allocate nothing.
//
// A Store has no internal locking. It is meant to be owned and mutated by a
// single logical owner per instance; concurrent use needs external mutual
// exclusion.
type Store struct {
	table *Table
	data  []byte // t.Len() regions of t.MaxSize() bytes each
	slots []slot
	stage []byte // staging buffer for copy-then-commit mutation
}

// NewStore creates a store with every slot empty. Slots are populated only
// by explicit Set calls; defaults are never applied implicitly (use
// SeedDefaults to opt in).
func NewStore(t *Table) *Store {
	return &Store{
		table: t,
		data:  make([]byte, t.Len()*t.MaxSize()),
		slots: make([]slot, t.Len()),
		stage: make([]byte, t.MaxSize()),
	}
}

// Table returns the handler table this store was built against.
func (s *Store) Table() *Table { return s.table }

// region returns the slot byte region for id. Callers bounds-check first.
func (s *Store) region(id ID) []byte {
	off := int(id) * s.table.maxSize
	return s.data[off : off+s.table.maxSize]
}

// commit copies b into id's slot and marks it populated. Every mutating
// path funnels through here after its checks passed, so a failed operation
// never touches the previous contents.
func (s *Store) commit(id ID, b []byte) {
	copy(s.region(id), b)
	s.slots[id] = slot{n: len(b), populated: true}
}

// Has reports whether id's slot has been populated.
func (s *Store) Has(id ID) bool {
	return int(id) < len(s.slots) && s.slots[id].populated
}

// SetRaw validates b as an encoding of id's native type and commits it.
// b must be exactly the handler's declared size. Validation runs against
// the caller's bytes, never the live slot, so a failing call leaves the
// previous value intact.
func (s *Store) SetRaw(id ID, b []byte) error {
	h, err := s.table.Handler(id)
	if err != nil {
		return err
	}
	if len(b) != h.size {
		return ErrSizeMismatch
	}
	if !h.validate(b) {
		return ErrValidationFailed
	}
	s.commit(id, b)
	return nil
}

// GetRaw copies id's stored bytes into out, which must be exactly the
// stored length. Stored values are already valid, so no re-validation
// happens on read.
func (s *Store) GetRaw(id ID, out []byte) error {
	if _, err := s.table.Handler(id); err != nil {
		return err
	}
	sl := s.slots[id]
	if !sl.populated {
		return ErrUninitialized
	}
	if len(out) != sl.n {
		return ErrSizeMismatch
	}
	copy(out, s.region(id)[:sl.n])
	return nil
}

// SetText parses text through id's handler, validates the result, and
// commits it. Parsing lands in the staging buffer, so the slot is untouched
// unless both parse and validation succeed.
func (s *Store) SetText(id ID, text string) error {
	h, err := s.table.Handler(id)
	if err != nil {
		return err
	}
	if h.parse == nil {
		return ErrMissingHook
	}
	dst := s.stage[:h.size]
	if err := h.parse(text, dst); err != nil {
		return err
	}
	if !h.validate(dst) {
		return ErrValidationFailed
	}
	s.commit(id, dst)
	return nil
}

// GetText renders id's stored value as its canonical text representation.
func (s *Store) GetText(id ID) (string, error) {
	h, err := s.table.Handler(id)
	if err != nil {
		return "", err
	}
	if h.format == nil {
		return "", ErrMissingHook
	}
	sl := s.slots[id]
	if !sl.populated {
		return "", ErrUninitialized
	}
	return h.format(s.region(id)[:sl.n])
}

// Clear empties id's slot. Subsequent gets return ErrUninitialized until
// the property is set again.
func (s *Store) Clear(id ID) error {
	if _, err := s.table.Handler(id); err != nil {
		return err
	}
	s.slots[id] = slot{}
	return nil
}

// SeedDefault populates id's slot with its descriptor default.
func (s *Store) SeedDefault(id ID) error {
	h, err := s.table.Handler(id)
	if err != nil {
		return err
	}
	s.commit(id, h.defaultBytes)
	return nil
}

// SeedDefaults populates every slot with its descriptor default. Defaults
// passed validation at handler construction, so this cannot fail.
func (s *Store) SeedDefaults() {
	for id := range s.slots {
		h := &s.table.handlers[id]
		s.commit(ID(id), h.defaultBytes)
	}
}

// Set writes a typed value into id's slot after a size check and
// validation. The only structural check is byte-size equality: T must be
// the type actually registered for id, and a mismatched type of equal size
// passes undetected. That correspondence is the caller's responsibility,
// matching the raw-byte contract of SetRaw.
func Set[T Native](s *Store, id ID, v T) error {
	h, err := s.table.Handler(id)
	if err != nil {
		return err
	}
	if nativeSize[T]() != h.size {
		return ErrSizeMismatch
	}
	dst := s.stage[:h.size]
	encodeNative(dst, v)
	if !h.validate(dst) {
		return ErrValidationFailed
	}
	s.commit(id, dst)
	return nil
}

// Get reads id's stored value as T. Fails with ErrUninitialized on a
// never-populated slot and ErrSizeMismatch when T's size disagrees with
// the stored length. The same caller-enforced type correspondence as Set
// applies.
func Get[T Native](s *Store, id ID) (T, error) {
	var zero T
	if _, err := s.table.Handler(id); err != nil {
		return zero, err
	}
	sl := s.slots[id]
	if !sl.populated {
		return zero, ErrUninitialized
	}
	if nativeSize[T]() != sl.n {
		return zero, ErrSizeMismatch
	}
	return decodeNative[T](s.region(id)[:sl.n]), nil
}
