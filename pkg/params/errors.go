package params

import "errors"

// Store operation errors. Every failure is reported at the point of
// occurrence; no operation mutates a slot before its checks pass.
var (
	ErrIdentifierOutOfRange = errors.New("property identifier out of range")
	ErrSizeMismatch         = errors.New("byte size does not match property representation")
	ErrValidationFailed     = errors.New("value outside admissible domain")
	ErrParseFailed          = errors.New("no parsable value in text")
	ErrMissingHook          = errors.New("handler has no hook for text operation")
	ErrUninitialized        = errors.New("property has never been set")
)

// Handler and table construction errors.
var (
	ErrEmptyName      = errors.New("descriptor name must not be empty")
	ErrEmptyKey       = errors.New("descriptor key must not be empty")
	ErrNilValidate    = errors.New("descriptor validate must not be nil")
	ErrInvalidDefault = errors.New("default value fails validation")
	ErrZeroHandler    = errors.New("handler was not built with NewHandler")
	ErrDuplicateName  = errors.New("duplicate property name")
	ErrDuplicateKey   = errors.New("duplicate property key")
	ErrUnknownKey     = errors.New("unknown property key")
)
