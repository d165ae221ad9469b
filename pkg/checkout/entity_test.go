package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/withreach/gip-checkout/pkg/checkout"
	"github.com/withreach/gip-checkout/pkg/payload"
)

func TestEntity(t *testing.T) {
	t.Parallel()

	t.Run("every listed entity resolves", func(t *testing.T) {
		for _, name := range checkout.Entities() {
			v, err := checkout.Entity(name)
			require.NoError(t, err, name)
			assert.NotNil(t, v, name)
		}
	})

	t.Run("unknown entity", func(t *testing.T) {
		_, err := checkout.Entity("refund")
		assert.ErrorIs(t, err, checkout.ErrUnknownEntity)
	})

	t.Run("financing reads its own key", func(t *testing.T) {
		v, err := checkout.Entity(checkout.EntityFinancing)
		require.NoError(t, err)

		out, err := v(payload.Object{"Financing": payload.Object{"Instalments": "3", "ConsumerPrice": "10.00"}})
		require.NoError(t, err)
		assert.Equal(t, payload.Object{"Instalments": "3", "ConsumerPrice": "10.00"}, out)
	})

	t.Run("card uses the whole body", func(t *testing.T) {
		v, err := checkout.Entity(checkout.EntityCard)
		require.NoError(t, err)

		_, err = v(payload.Object{
			"Number":           "4111111111111111",
			"Name":             "Joe",
			"Expiry":           payload.Object{"Month": "1", "Year": "2030"},
			"VerificationCode": "999",
		})
		assert.NoError(t, err)
	})

	t.Run("order passes options through", func(t *testing.T) {
		v, err := checkout.Entity(checkout.EntityOrder, checkout.WithConsumerIP("9.9.9.9"))
		require.NoError(t, err)

		out, err := v(orderInput())
		require.NoError(t, err)
		assert.Equal(t, "9.9.9.9", out.(payload.Object)["Consumer"].(payload.Object)["IpAddress"])
	})

	t.Run("entities are sorted", func(t *testing.T) {
		assert.IsNonDecreasing(t, checkout.Entities())
	})
}
