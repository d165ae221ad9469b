package payload

// Builder resolves the fields of one composite from a source object. It
// records the first failure and turns every later step into a no-op, which
// keeps the fail-fast order of the calls that feed it.
type Builder struct {
	src Object
	out Object
	err error
}

// NewBuilder starts a composite read from src.
func NewBuilder(src Object) *Builder {
	return &Builder{src: src, out: make(Object)}
}

// Err returns the first failure recorded so far.
func (b *Builder) Err() error { return b.err }

// Set stores an already resolved value.
func (b *Builder) Set(key string, v any, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.out[key] = v
}

// Build returns the resolved fields with null values filtered out.
func (b *Builder) Build() (Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	return Filter(b.out), nil
}

// Field resolves a required key of kind k.
func Field[T any](b *Builder, key string, k Kind[T]) {
	if b.err != nil {
		return
	}
	v, err := k.Get(b.src, key)
	b.Set(key, v, err)
}

// OptionalField resolves a key of kind k that may be absent or null.
func OptionalField[T any](b *Builder, key string, k Kind[T]) {
	if b.err != nil {
		return
	}
	v, err := k.Optional(b.src, key)
	b.Set(key, deref(v), err)
}

// Compose resolves key with a composite validator reading the source object.
func Compose[T any](b *Builder, key string, fn func(Object) (T, error)) {
	if b.err != nil {
		return
	}
	v, err := fn(b.src)
	b.Set(key, v, err)
}
