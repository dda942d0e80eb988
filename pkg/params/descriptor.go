package params

import (
	"strconv"
	"strings"
)

// Descriptor is the compile-time metadata bundle for one property type.
// Name and Key must be unique across the catalog; Default must satisfy
// Validate. Parse and Format are optional: a property without them supports
// only typed and raw-byte access, and text operations on it return
// ErrMissingHook.
//
// Parse is purely syntactic. It does not apply the domain predicate; the
// store runs Validate on every parsed value before committing it, so the
// two concerns stay separated and validation happens exactly once per
// mutation.
type Descriptor[T Native] struct {
	Name     string
	Key      string
	Default  T
	Validate func(T) bool
	Parse    func(string) (T, error)
	Format   func(T) string
}

// InRange returns a validator accepting the inclusive interval [lo, hi].
func InRange[T Number](lo, hi T) func(T) bool {
	return func(v T) bool { return v >= lo && v <= hi }
}

// ParseDecimal parses a decimal literal into T. Parsing is strict: leading
// and trailing whitespace is tolerated, but empty input or any trailing
// non-numeric text is ErrParseFailed. The original firmware accepted a
// numeric prefix and silently dropped the rest; that leniency masked typos
// like "37.5C" and is deliberately not reproduced here.
func ParseDecimal[T Number](s string) (T, error) {
	var v T
	s = strings.TrimSpace(s)
	if s == "" {
		return v, ErrParseFailed
	}
	switch p := any(&v).(type) {
	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = f
	case *int16:
		n, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = int16(n)
	case *int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = int32(n)
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = n
	case *uint8:
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = uint8(n)
	case *uint16:
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = uint16(n)
	case *uint32:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = uint32(n)
	case *uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return v, ErrParseFailed
		}
		*p = n
	}
	return v, nil
}

// ParseBool parses "true"/"false" (and the strconv 1/0/t/f spellings).
func ParseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, ErrParseFailed
	}
	return b, nil
}

// FormatFixed returns a formatter rendering T with a fixed number of
// decimals, e.g. FormatFixed[float32](2) renders 37.5 as "37.50".
func FormatFixed[T Float](decimals int) func(T) string {
	return func(v T) string {
		switch x := any(v).(type) {
		case float32:
			return strconv.FormatFloat(float64(x), 'f', decimals, 32)
		default:
			return strconv.FormatFloat(any(v).(float64), 'f', decimals, 64)
		}
	}
}

// FormatDecimal renders an integer property as a plain decimal string.
func FormatDecimal[T Number](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	default:
		return strconv.FormatUint(any(v).(uint64), 10)
	}
}

// FormatBool renders a boolean property as "true" or "false".
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}
