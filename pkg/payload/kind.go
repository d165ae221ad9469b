package payload

// Kind validates a single scalar value. Kinds are pure predicates with
// pass-through: an accepted value is returned exactly as it was received.
type Kind[T any] struct {
	name  string
	parse func(v any) (T, bool)
}

// Name describes what the kind expects, e.g. "decimal value".
func (k Kind[T]) Name() string { return k.name }

// As returns v when it matches the kind. Null is rejected.
func (k Kind[T]) As(v any) (T, error) {
	if t, ok := k.parse(v); ok {
		return t, nil
	}
	var zero T
	return zero, invalid(v, k.name)
}

// AsOptional is As with null allowed: it returns nil for a null value.
func (k Kind[T]) AsOptional(v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	t, err := k.As(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Get reads a required key and validates its value.
func (k Kind[T]) Get(o Object, key string) (T, error) {
	var zero T
	v, err := Required(o, key)
	if err != nil {
		return zero, err
	}
	t, err := k.As(v)
	if err != nil {
		return zero, withKey(err, key)
	}
	return t, nil
}

// Optional reads a key that may be absent or null.
func (k Kind[T]) Optional(o Object, key string) (*T, error) {
	t, err := k.AsOptional(Optional(o, key))
	if err != nil {
		return nil, withKey(err, key)
	}
	return t, nil
}

func stringKind(name string, match func(string) bool) Kind[string] {
	return Kind[string]{
		name: name,
		parse: func(v any) (string, bool) {
			s, ok := v.(string)
			if !ok || !match(s) {
				return "", false
			}
			return s, true
		},
	}
}

// deref unwraps an optional result, mapping an absent value to a plain nil so
// Filter can drop it.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
