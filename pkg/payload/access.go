package payload

// Lookup returns the value stored under key and whether the key exists.
// A present key holding null reports (nil, true).
func Lookup(o Object, key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o[key]
	return v, ok
}

// Optional returns the value stored under key, or nil when the key is absent.
func Optional(o Object, key string) any {
	v, _ := Lookup(o, key)
	return v
}

// Required returns the value stored under key. Presence is structural: an
// explicit null is returned as-is and left to the caller's kind to reject.
func Required(o Object, key string) (any, error) {
	v, ok := Lookup(o, key)
	if !ok {
		return nil, &MissingFieldError{Key: key}
	}
	return v, nil
}
