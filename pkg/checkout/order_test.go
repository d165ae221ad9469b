package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/withreach/gip-checkout/pkg/checkout"
	"github.com/withreach/gip-checkout/pkg/payload"
)

func orderInput() payload.Object {
	return payload.Object{
		"MerchantId":       "6f9c2b4e-1d2a-4c3b-9e8f-0a1b2c3d4e5f",
		"ConsumerCurrency": "CAD",
		"Items": []any{
			payload.Object{"Sku": "W-1", "ConsumerPrice": "12.50", "Quantity": "2"},
		},
		"Consumer": payload.Object{
			"Name":    "Joe Shopper",
			"Email":   "joe@example.com",
			"Phone":   "5551234",
			"Address": "1 Main St",
			"City":    "Toronto",
			"Country": "CA",
		},
	}
}

func TestOrder(t *testing.T) {
	t.Parallel()

	t.Run("minimal order", func(t *testing.T) {
		out, err := checkout.Order(orderInput())
		require.NoError(t, err)

		assert.Equal(t, "6f9c2b4e-1d2a-4c3b-9e8f-0a1b2c3d4e5f", out["MerchantId"])
		assert.Equal(t, "CAD", out["ConsumerCurrency"])
		assert.Len(t, out["Items"], 1)
		for _, key := range []string{"Shipping", "Charges", "Discounts", "Financing", "Consignee", "Card", "Capture", "ReturnUrl"} {
			assert.NotContains(t, out, key)
		}
	})

	t.Run("full order", func(t *testing.T) {
		in := orderInput()
		in["ReferenceId"] = "ref-42"
		in["Shipping"] = payload.Object{"ConsumerPrice": "5.00", "ConsumerTaxes": "0.65", "ConsumerDuty": "0"}
		in["Charges"] = []any{payload.Object{"Name": "wrap", "ConsumerPrice": "1.00"}}
		in["Discounts"] = []any{payload.Object{"Name": "promo", "ConsumerPrice": "2.00"}}
		in["Financing"] = payload.Object{"Instalments": "3", "ConsumerPrice": "10.00"}
		in["Consignee"] = payload.Object{"Name": "Ann", "Address": "2 Side St", "City": "Ottawa", "Country": "CA"}
		in["Card"] = payload.Object{
			"Number":           "4111111111111111",
			"Name":             "Joe Shopper",
			"Expiry":           payload.Object{"Month": "7", "Year": "2031"},
			"VerificationCode": "123",
		}
		in["AcceptLiability"] = false
		in["Capture"] = true
		in["ReturnUrl"] = "https://shop.example.com/return"
		in["NotifyUrl"] = nil
		in["ContactEmail"] = "support@shop.example.com"

		out, err := checkout.Order(in)
		require.NoError(t, err)

		assert.Equal(t, "ref-42", out["ReferenceId"])
		assert.Equal(t, payload.Object{"ConsumerPrice": "5.00", "ConsumerTaxes": "0.65", "ConsumerDuty": "0"}, out["Shipping"])
		assert.Equal(t, []payload.Object{{"Name": "wrap", "ConsumerPrice": "1.00"}}, out["Charges"])
		assert.Equal(t, []payload.Object{{"Name": "promo", "ConsumerPrice": "2.00"}}, out["Discounts"])
		assert.Equal(t, payload.Object{"Instalments": "3", "ConsumerPrice": "10.00"}, out["Financing"])
		assert.Equal(t, "Ann", out["Consignee"].(payload.Object)["Name"])
		assert.Equal(t, "4111111111111111", out["Card"].(payload.Object)["Number"])
		assert.Equal(t, false, out["AcceptLiability"])
		assert.Equal(t, true, out["Capture"])
		assert.NotContains(t, out, "NotifyUrl")
	})

	t.Run("requires merchant id", func(t *testing.T) {
		in := orderInput()
		delete(in, "MerchantId")
		_, err := checkout.Order(in)
		var missing *payload.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "MerchantId", missing.Key)
	})

	t.Run("fails fast on the first nested error", func(t *testing.T) {
		in := orderInput()
		in["Items"] = []any{payload.Object{"Sku": "W-1", "ConsumerPrice": "abc", "Quantity": "1"}}
		in["Consumer"] = "nobody"
		_, err := checkout.Order(in)
		var iv *payload.InvalidValueError
		require.ErrorAs(t, err, &iv)
		assert.Equal(t, "ConsumerPrice", iv.Key)
	})

	t.Run("invalid card is redacted", func(t *testing.T) {
		in := orderInput()
		in["Card"] = payload.Object{
			"Number":           "4111-1111",
			"Name":             "Joe Shopper",
			"Expiry":           payload.Object{"Month": "7", "Year": "2031"},
			"VerificationCode": "123",
		}
		_, err := checkout.Order(in)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "4111")
	})

	t.Run("rejects non-boolean capture", func(t *testing.T) {
		in := orderInput()
		in["Capture"] = "yes"
		_, err := checkout.Order(in)
		assert.ErrorIs(t, err, payload.ErrInvalidValue)
	})
}

func TestOrderConsumerIP(t *testing.T) {
	t.Parallel()

	t.Run("fills missing address", func(t *testing.T) {
		in := orderInput()
		out, err := checkout.Order(in, checkout.WithConsumerIP("8.8.4.4"))
		require.NoError(t, err)
		assert.Equal(t, "8.8.4.4", out["Consumer"].(payload.Object)["IpAddress"])
		assert.NotContains(t, in["Consumer"], "IpAddress")
	})

	t.Run("keeps caller supplied address", func(t *testing.T) {
		in := orderInput()
		in["Consumer"].(payload.Object)["IpAddress"] = "1.1.1.1"
		out, err := checkout.Order(in, checkout.WithConsumerIP("8.8.4.4"))
		require.NoError(t, err)
		assert.Equal(t, "1.1.1.1", out["Consumer"].(payload.Object)["IpAddress"])
	})

	t.Run("ignores private address", func(t *testing.T) {
		out, err := checkout.Order(orderInput(), checkout.WithConsumerIP("10.0.0.5"))
		require.NoError(t, err)
		assert.NotContains(t, out["Consumer"], "IpAddress")
	})
}
