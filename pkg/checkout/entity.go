package checkout

import (
	"fmt"
	"slices"

	"github.com/withreach/gip-checkout/pkg/payload"
)

// Validator validates one entity from a decoded request body.
type Validator func(payload.Object) (any, error)

// Entity names accepted by Entity.
const (
	EntityOrder     = "order"
	EntityItems     = "items"
	EntityShipping  = "shipping"
	EntityCharges   = "charges"
	EntityDiscounts = "discounts"
	EntityFinancing = "financing"
	EntityConsumer  = "consumer"
	EntityConsignee = "consignee"
	EntityCard      = "card"
)

// Entity returns the validator registered under name. Composite entities read
// their own key from the body (e.g. "items" reads body["Items"]); "card" treats
// the whole body as the card.
func Entity(name string, opts ...Option) (Validator, error) {
	switch name {
	case EntityOrder:
		return func(o payload.Object) (any, error) { return Order(o, opts...) }, nil
	case EntityItems:
		return func(o payload.Object) (any, error) { return payload.Items(o) }, nil
	case EntityShipping:
		return func(o payload.Object) (any, error) { return payload.Shipping(o) }, nil
	case EntityCharges:
		return func(o payload.Object) (any, error) { return payload.Ancillary(o, payload.ChargesKey) }, nil
	case EntityDiscounts:
		return func(o payload.Object) (any, error) { return payload.Ancillary(o, payload.DiscountsKey) }, nil
	case EntityFinancing:
		return func(o payload.Object) (any, error) { return payload.Financing(o) }, nil
	case EntityConsumer:
		return func(o payload.Object) (any, error) { return payload.Consumer(o) }, nil
	case EntityConsignee:
		return func(o payload.Object) (any, error) { return payload.Consignee(o) }, nil
	case EntityCard:
		return func(o payload.Object) (any, error) { return payload.Card(o) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}
}

// Entities lists every name Entity accepts, sorted.
func Entities() []string {
	names := []string{
		EntityOrder, EntityItems, EntityShipping, EntityCharges, EntityDiscounts,
		EntityFinancing, EntityConsumer, EntityConsignee, EntityCard,
	}
	slices.Sort(names)
	return names
}
