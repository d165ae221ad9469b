package payload

import "maps"

const (
	ConsumerKey  = "Consumer"
	ConsigneeKey = "Consignee"
)

// Consumer reads the required Consumer contact. On top of the contact fields
// it accepts NationalIdentifier, BirthDate, MerchantProfileId and a public
// IpAddress, all optional.
func Consumer(o Object) (Object, error) {
	return consumer(Optional(o, ConsumerKey), false)
}

// OptionalConsumer is Consumer returning nil when the key is absent or null.
func OptionalConsumer(o Object) (Object, error) {
	return consumer(Optional(o, ConsumerKey), true)
}

func consumer(v any, nullable bool) (Object, error) {
	if nullable && TypeOf(v) == TypeNull {
		return nil, nil
	}
	c, err := contact(v, true)
	if err != nil {
		return nil, err
	}

	src, _ := AsObject(v)
	b := NewBuilder(src)
	OptionalField(b, "NationalIdentifier", String)
	OptionalField(b, "BirthDate", Date)
	OptionalField(b, "MerchantProfileId", String)
	OptionalField(b, "IpAddress", IP)
	ext, err := b.Build()
	if err != nil {
		return nil, err
	}

	maps.Copy(c, ext)
	return c, nil
}

// Consignee reads the optional Consignee contact. Unlike Consumer, Email and
// Phone may be omitted.
func Consignee(o Object) (Object, error) {
	v := Optional(o, ConsigneeKey)
	if TypeOf(v) == TypeNull {
		return nil, nil
	}
	return contact(v, false)
}

// contact resolves the fields shared by consumers and consignees.
func contact(v any, isConsumer bool) (Object, error) {
	who := ConsigneeKey
	if isConsumer {
		who = ConsumerKey
	}
	src, ok := AsObject(v)
	if !ok {
		return nil, invalid(v, "array for "+who)
	}

	b := NewBuilder(src)
	Field(b, "Name", String)
	OptionalField(b, "Company", String)
	if isConsumer {
		Field(b, "Email", String)
		Field(b, "Phone", String)
	} else {
		OptionalField(b, "Email", String)
		OptionalField(b, "Phone", String)
	}
	Field(b, "Address", String)
	Field(b, "City", String)
	OptionalField(b, "Region", String)
	OptionalField(b, "PostalCode", String)
	Field(b, "Country", Country)
	return b.Build()
}
