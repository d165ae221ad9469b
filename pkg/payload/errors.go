package payload

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by every MissingFieldError.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidValue is matched by every InvalidValueError.
	ErrInvalidValue = errors.New("invalid value")
)

// Redacted replaces sensitive card values in errors and logs.
const Redacted = "REDACTED"

// MissingFieldError reports a required key absent from its containing object.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Key)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Field returns the name of the missing key.
func (e *MissingFieldError) Field() string { return e.Key }

func (e *MissingFieldError) TranslationKey() string { return "validation.missing_field" }

func (e *MissingFieldError) TranslationValues() map[string]any {
	return map[string]any{"field": e.Key}
}

// InvalidValueError reports a present value that failed its format or type
// check. Key is set when the value was read through a keyed accessor.
type InvalidValueError struct {
	Key      string
	Value    any
	Expected string
}

func (e *InvalidValueError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid value %s for %q: expected %s", describe(e.Value), e.Key, e.Expected)
	}
	return fmt.Sprintf("invalid value %s: expected %s", describe(e.Value), e.Expected)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// Field returns the key the value was read from, or the expected description
// when the value was validated without a key.
func (e *InvalidValueError) Field() string {
	if e.Key != "" {
		return e.Key
	}
	return e.Expected
}

func (e *InvalidValueError) TranslationKey() string { return "validation.invalid_value" }

func (e *InvalidValueError) TranslationValues() map[string]any {
	return map[string]any{
		"field":    e.Field(),
		"expected": e.Expected,
	}
}

func invalid(v any, expected string) error {
	return &InvalidValueError{Value: v, Expected: expected}
}

// withKey attaches key to an InvalidValueError that does not carry one yet.
func withKey(err error, key string) error {
	var iv *InvalidValueError
	if errors.As(err, &iv) && iv.Key == "" {
		return &InvalidValueError{Key: key, Value: iv.Value, Expected: iv.Expected}
	}
	return err
}

// describe renders a value for an error message. Arrays and objects are
// reported by type only so nested data never ends up in a message.
func describe(v any) string {
	switch t := TypeOf(v); t {
	case TypeNull:
		return "null"
	case TypeString:
		return fmt.Sprintf("%q", v)
	case TypeBool, TypeNumber:
		return fmt.Sprintf("%v", v)
	default:
		return t.String()
	}
}
