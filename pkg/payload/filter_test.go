package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/withreach/gip-checkout/pkg/payload"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("removes null values only", func(t *testing.T) {
		in := payload.Object{
			"Null":        nil,
			"NilObject":   payload.Object(nil),
			"NilItems":    []payload.Object(nil),
			"Empty":       "",
			"Zero":        0,
			"False":       false,
			"EmptyObject": payload.Object{},
		}

		assert.Equal(t, payload.Object{
			"Empty":       "",
			"Zero":        0,
			"False":       false,
			"EmptyObject": payload.Object{},
		}, payload.Filter(in))
	})

	t.Run("removes typed nil pointers", func(t *testing.T) {
		name := "Joe"
		in := payload.Object{"Company": (*string)(nil), "Name": &name, "B": "x"}
		out := payload.Filter(in)
		assert.NotContains(t, out, "Company")
		assert.Contains(t, out, "Name")
		assert.Equal(t, "x", out["B"])
	})

	t.Run("is shallow", func(t *testing.T) {
		nested := payload.Object{"Inner": nil}
		out := payload.Filter(payload.Object{"Nested": nested})
		assert.Equal(t, payload.Object{"Nested": payload.Object{"Inner": nil}}, out)
	})

	t.Run("is idempotent", func(t *testing.T) {
		in := payload.Object{"A": "1", "B": nil, "C": false}
		once := payload.Filter(in)
		assert.Equal(t, once, payload.Filter(once))
	})

	t.Run("does not modify its input", func(t *testing.T) {
		in := payload.Object{"A": nil}
		_ = payload.Filter(in)
		assert.Contains(t, in, "A")
	})

	t.Run("handles nil input", func(t *testing.T) {
		assert.Empty(t, payload.Filter(nil))
	})
}
