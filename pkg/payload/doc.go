// Package payload validates and normalizes untyped payment-request data
// before it is submitted to the payment gateway.
//
// Input arrives as a decoded JSON or YAML document: an Object whose values are
// null, booleans, strings, numbers, arrays or nested objects. The package turns
// that document into a normalized Object that contains only recognized keys,
// with null-valued optional keys removed.
//
// # Architecture
//
// The package is built leaf-first:
//
//   - Field accessors (Lookup, Optional, Required) read a key and distinguish
//     "absent" from "present".
//   - Primitive kinds (String, Decimal, Country, UUID, IP, ...) are Kind values
//     exposing As, AsOptional, Get and Optional. They never normalize: an
//     accepted value is returned unchanged.
//   - Composite validators (Items, Shipping, Ancillary, Financing, Consumer,
//     Consignee, Card) compose accessors and kinds into nested entities.
//   - Filter removes null-valued keys from a finished composite.
//
// There is no package-level mutable state; every function is safe for
// concurrent use.
//
// # Usage
//
//	items, err := payload.Items(input)
//	if err != nil {
//	    var missing *payload.MissingFieldError
//	    if errors.As(err, &missing) {
//	        // missing.Key names the absent field
//	    }
//	    return err
//	}
//
//	price, err := payload.Decimal.Get(input, "ConsumerPrice")
//
// # Error Handling
//
// Validation is fail-fast: the first failure aborts the call. Only two error
// kinds exist, MissingFieldError and InvalidValueError, matched with
// errors.Is against ErrMissingField and ErrInvalidValue. Card number and
// verification code failures always carry the Redacted placeholder instead of
// the offending value, so every error from this package is safe to log.
package payload
