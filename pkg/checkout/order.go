package checkout

import (
	"maps"

	"github.com/withreach/gip-checkout/pkg/payload"
)

// Order validates input and returns the normalized order request.
//
// Required: MerchantId, ConsumerCurrency, Items, Consumer. Everything else is
// optional and omitted from the result when absent or null.
func Order(input payload.Object, opts ...Option) (payload.Object, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.consumerIP != "" {
		input = inferConsumerIP(input, o.consumerIP)
	}

	b := payload.NewBuilder(input)
	payload.Field(b, "MerchantId", payload.UUID)
	payload.OptionalField(b, "ReferenceId", payload.String)
	payload.Field(b, "ConsumerCurrency", payload.Currency)
	payload.Compose(b, payload.ItemsKey, payload.Items)
	payload.Compose(b, payload.ShippingKey, payload.Shipping)
	payload.Compose(b, payload.ChargesKey, ancillary(payload.ChargesKey))
	payload.Compose(b, payload.DiscountsKey, ancillary(payload.DiscountsKey))
	payload.Compose(b, payload.FinancingKey, payload.Financing)
	payload.Compose(b, payload.ConsumerKey, payload.Consumer)
	payload.Compose(b, payload.ConsigneeKey, payload.Consignee)
	payload.Compose(b, payload.CardKey, func(src payload.Object) (payload.Object, error) {
		return payload.OptionalCard(payload.Optional(src, payload.CardKey))
	})
	payload.OptionalField(b, "AcceptLiability", payload.Boolean)
	payload.OptionalField(b, "Capture", payload.Boolean)
	payload.OptionalField(b, "ReturnUrl", payload.URL)
	payload.OptionalField(b, "NotifyUrl", payload.URL)
	payload.OptionalField(b, "ContactEmail", payload.Email)
	payload.OptionalField(b, "DeviceFingerprint", payload.String)
	return b.Build()
}

func ancillary(name string) func(payload.Object) ([]payload.Object, error) {
	return func(src payload.Object) ([]payload.Object, error) {
		return payload.Ancillary(src, name)
	}
}

// inferConsumerIP returns input with Consumer.IpAddress set to ip when the
// consumer object exists, carries no address, and ip is public. The caller's
// objects are never modified.
func inferConsumerIP(input payload.Object, ip string) payload.Object {
	c, ok := payload.AsObject(payload.Optional(input, payload.ConsumerKey))
	if !ok || payload.Optional(c, "IpAddress") != nil {
		return input
	}
	if _, err := payload.IP.As(ip); err != nil {
		return input
	}

	consumer := maps.Clone(c)
	consumer["IpAddress"] = ip
	out := maps.Clone(input)
	out[payload.ConsumerKey] = consumer
	return out
}
