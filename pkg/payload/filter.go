package payload

// Filter returns a copy of o without its null-valued keys. Empty strings,
// zeros and false are kept. The pass is shallow: nested values are copied by
// reference and are expected to have been filtered when they were built.
func Filter(o Object) Object {
	out := make(Object, len(o))
	for k, v := range o {
		if TypeOf(v) == TypeNull {
			continue
		}
		out[k] = v
	}
	return out
}
