package payload

import "strconv"

const CardKey = "Card"

const maxExpiryMonth = 12

// Card validates the card value itself (not a container holding it):
//
//	{"Number": "4111111111111111", "Name": "Joe Shopper",
//	 "Expiry": {"Year": "2030", "Month": "5"}, "VerificationCode": "013"}
//
// Number and VerificationCode are checked without the generic kinds so a
// failure reports Redacted rather than the card data. Expiry.Month must lie
// in 0..12; zero is accepted.
func Card(v any) (Object, error) {
	return card(v, false)
}

// OptionalCard is Card returning nil for a null value.
func OptionalCard(v any) (Object, error) {
	return card(v, true)
}

func card(v any, nullable bool) (Object, error) {
	if nullable && TypeOf(v) == TypeNull {
		return nil, nil
	}
	src, ok := AsObject(v)
	if !ok {
		// a scalar here may well be a bare card number
		return nil, invalid(Redacted, "array for card")
	}

	number, err := secretDigits(src, "Number", "card number")
	if err != nil {
		return nil, err
	}
	cvv, err := secretDigits(src, "VerificationCode", "verification code")
	if err != nil {
		return nil, err
	}

	exp, err := Required(src, "Expiry")
	if err != nil {
		return nil, err
	}
	expiry, ok := AsObject(exp)
	if !ok {
		return nil, invalid(exp, "array for card expiry")
	}

	month, err := Number.Get(expiry, "Month")
	if err != nil {
		return nil, err
	}
	if m, convErr := strconv.Atoi(month); convErr != nil || m < 0 || m > maxExpiryMonth {
		return nil, &InvalidValueError{Key: "Month", Value: month, Expected: "Month"}
	}

	name, err := String.Get(src, "Name")
	if err != nil {
		return nil, err
	}
	year, err := Number.Get(expiry, "Year")
	if err != nil {
		return nil, err
	}

	return Object{
		"Number": number,
		"Name":   name,
		"Expiry": Object{
			"Month": month,
			"Year":  year,
		},
		"VerificationCode": cvv,
	}, nil
}

// secretDigits reads a required digits-only value whose content must never
// appear in an error.
func secretDigits(src Object, key, expected string) (string, error) {
	v, err := Required(src, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok || !digitsRegex.MatchString(s) {
		return "", &InvalidValueError{Key: key, Value: Redacted, Expected: expected}
	}
	return s, nil
}
