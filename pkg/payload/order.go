package payload

// Keys of the order-level composites.
const (
	ItemsKey     = "Items"
	ShippingKey  = "Shipping"
	ChargesKey   = "Charges"
	DiscountsKey = "Discounts"
	FinancingKey = "Financing"
)

// Items reads the Items array. Every entry must be an object with Sku,
// ConsumerPrice and Quantity; Description and ImageUrl are optional. At least
// one entry is expected, but an empty array is accepted.
//
//	"Items": [
//	  {"Sku": "123X", "ConsumerPrice": "123.45", "Quantity": "1",
//	   "Description": "widget", "ImageUrl": "http://example.com/widget.png"}
//	]
func Items(o Object) ([]Object, error) {
	return items(Optional(o, ItemsKey), false)
}

// OptionalItems is Items returning nil when the key is absent or null.
func OptionalItems(o Object) ([]Object, error) {
	return items(Optional(o, ItemsKey), true)
}

func items(v any, nullable bool) ([]Object, error) {
	if TypeOf(v) == TypeNull {
		if nullable {
			return nil, nil
		}
		return nil, invalid(v, "array for "+ItemsKey)
	}
	return eachObject(v, ItemsKey, func(entry Object) (Object, error) {
		b := NewBuilder(entry)
		Field(b, "Sku", String)
		Field(b, "ConsumerPrice", Decimal)
		Field(b, "Quantity", Decimal)
		OptionalField(b, "Description", String)
		OptionalField(b, "ImageUrl", URL)
		return b.Build()
	})
}

// Shipping reads the optional Shipping object. When present, ConsumerPrice,
// ConsumerTaxes and ConsumerDuty are all required decimals.
func Shipping(o Object) (Object, error) {
	v := Optional(o, ShippingKey)
	if TypeOf(v) == TypeNull {
		return nil, nil
	}
	src, ok := AsObject(v)
	if !ok {
		return nil, invalid(v, "array for "+ShippingKey)
	}
	b := NewBuilder(src)
	Field(b, "ConsumerPrice", Decimal)
	Field(b, "ConsumerTaxes", Decimal)
	Field(b, "ConsumerDuty", Decimal)
	return b.Build()
}

// Ancillary reads an optional array of named charges or discounts stored
// under name (ChargesKey or DiscountsKey). ConsumerPrice is only checked to
// be a string.
func Ancillary(o Object, name string) ([]Object, error) {
	v := Optional(o, name)
	if TypeOf(v) == TypeNull {
		return nil, nil
	}
	return eachObject(v, name, func(entry Object) (Object, error) {
		b := NewBuilder(entry)
		Field(b, "Name", String)
		Field(b, "ConsumerPrice", String)
		return b.Build()
	})
}

// Financing reads the optional Financing object.
func Financing(o Object) (Object, error) {
	v := Optional(o, FinancingKey)
	if TypeOf(v) == TypeNull {
		return nil, nil
	}
	src, ok := AsObject(v)
	if !ok {
		return nil, invalid(v, "array for "+FinancingKey)
	}
	b := NewBuilder(src)
	Field(b, "Instalments", Number)
	Field(b, "ConsumerPrice", Decimal)
	return b.Build()
}

// eachObject validates v as an array of objects, building each entry in
// order. The result is never nil for a valid array.
func eachObject(v any, name string, build func(Object) (Object, error)) ([]Object, error) {
	entries, ok := AsArray(v)
	if !ok {
		return nil, invalid(v, "array for "+name)
	}
	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		if TypeOf(e) == TypeNull {
			return nil, invalid(e, "array value for "+name)
		}
		src, ok := AsObject(e)
		if !ok {
			return nil, invalid(e, "array for "+name+" entry")
		}
		built, err := build(src)
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}
