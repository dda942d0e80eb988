package params

// StorageKind tags where a property's value is retained.
type StorageKind uint8

const (
	// StorageVolatile keeps the value in process memory only.
	StorageVolatile StorageKind = iota
	// StorageNonVolatile is declared for future backends. No handler uses
	// it yet; persistence is an external collaborator over the text
	// representation (see internal/snapshot).
	StorageNonVolatile
)

// String returns the storage kind name for display.
func (k StorageKind) String() string {
	switch k {
	case StorageVolatile:
		return "volatile"
	case StorageNonVolatile:
		return "non-volatile"
	default:
		return "unknown"
	}
}

// Handler is the type-erased, runtime-dispatchable counterpart of a
// Descriptor. Its three operations reinterpret opaque byte buffers as the
// descriptor's native type and delegate to the descriptor's hooks. Handlers
// are immutable once built.
type Handler struct {
	name         string
	key          string
	size         int
	storage      StorageKind
	defaultBytes []byte
	validate     func([]byte) bool
	parse        func(string, []byte) error
	format       func([]byte) (string, error)
}

// NewHandler derives a type-erased handler from a descriptor. It fails if
// the descriptor has no name, no key, or no validator, or if the default
// value does not satisfy the validator. A nil Parse or Format is allowed
// and surfaces later as ErrMissingHook on text operations.
func NewHandler[T Native](d Descriptor[T]) (Handler, error) {
	if d.Name == "" {
		return Handler{}, ErrEmptyName
	}
	if d.Key == "" {
		return Handler{}, ErrEmptyKey
	}
	if d.Validate == nil {
		return Handler{}, ErrNilValidate
	}
	if !d.Validate(d.Default) {
		return Handler{}, ErrInvalidDefault
	}

	size := nativeSize[T]()
	h := Handler{
		name:         d.Name,
		key:          d.Key,
		size:         size,
		storage:      StorageVolatile,
		defaultBytes: make([]byte, size),
	}
	encodeNative(h.defaultBytes, d.Default)

	validate := d.Validate
	h.validate = func(b []byte) bool {
		return validate(decodeNative[T](b))
	}
	if d.Parse != nil {
		parse := d.Parse
		h.parse = func(s string, dst []byte) error {
			v, err := parse(s)
			if err != nil {
				return err
			}
			encodeNative(dst, v)
			return nil
		}
	}
	if d.Format != nil {
		format := d.Format
		h.format = func(b []byte) (string, error) {
			return format(decodeNative[T](b)), nil
		}
	}
	return h, nil
}

// Name returns the property's display name.
func (h *Handler) Name() string { return h.name }

// Key returns the short lookup token used for external addressing.
func (h *Handler) Key() string { return h.key }

// Size returns the byte size of the property's native representation.
func (h *Handler) Size() int { return h.size }

// Storage returns where the property's value is retained.
func (h *Handler) Storage() StorageKind { return h.storage }

// CanParse reports whether the handler supports text-to-value parsing.
func (h *Handler) CanParse() bool { return h.parse != nil }

// CanFormat reports whether the handler supports value-to-text rendering.
func (h *Handler) CanFormat() bool { return h.format != nil }

// ValidateBytes reports whether b holds a valid encoding of the property's
// native type. A buffer of the wrong length is never valid.
func (h *Handler) ValidateBytes(b []byte) bool {
	return len(b) == h.size && h.validate(b)
}

// ParseText parses s into dst, which must hold at least Size bytes.
// Returns ErrMissingHook when the descriptor declared no parser. The parsed
// encoding is not validated here; callers run ValidateBytes before
// committing it anywhere.
func (h *Handler) ParseText(s string, dst []byte) error {
	if h.parse == nil {
		return ErrMissingHook
	}
	if len(dst) < h.size {
		return ErrSizeMismatch
	}
	return h.parse(s, dst[:h.size])
}

// FormatBytes renders the encoding in b as the property's canonical text.
// Returns ErrMissingHook when the descriptor declared no formatter.
func (h *Handler) FormatBytes(b []byte) (string, error) {
	if h.format == nil {
		return "", ErrMissingHook
	}
	if len(b) != h.size {
		return "", ErrSizeMismatch
	}
	return h.format(b)
}

// DefaultBytes returns a copy of the encoded default value.
func (h *Handler) DefaultBytes() []byte {
	out := make([]byte, len(h.defaultBytes))
	copy(out, h.defaultBytes)
	return out
}
