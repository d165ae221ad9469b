// Package checkout assembles the outbound order request from caller input by
// composing the validators of package payload.
//
// Order validates a whole request; Entity returns a Validator for a single
// composite (items, consumer, card, ...) so tools can check one part of a
// request in isolation.
//
//	req, err := checkout.Order(input, checkout.WithConsumerIP(clientIP))
//	if err != nil {
//	    return err // *payload.MissingFieldError or *payload.InvalidValueError
//	}
package checkout
