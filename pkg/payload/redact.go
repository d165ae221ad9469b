package payload

import "strings"

// Redact returns a deep copy of a normalized payload in which every object
// stored under CardKey has been passed through MaskCard. Use it before a
// normalized payload is logged.
func Redact(o Object) Object {
	if o == nil {
		return nil
	}
	out := make(Object, len(o))
	for k, v := range o {
		if c, ok := AsObject(v); ok && k == CardKey {
			out[k] = MaskCard(c)
			continue
		}
		out[k] = redactValue(v)
	}
	return out
}

func redactValue(v any) any {
	switch x := v.(type) {
	case Object:
		return Redact(x)
	case []Object:
		out := make([]Object, len(x))
		for i, o := range x {
			out[i] = Redact(o)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = redactValue(e)
		}
		return out
	default:
		return v
	}
}

// MaskCard returns a copy of a card object with Number reduced to its last
// four digits and VerificationCode replaced by Redacted.
func MaskCard(c Object) Object {
	out := Redact(c)
	if n, ok := out["Number"].(string); ok {
		out["Number"] = maskDigits(n)
	} else if _, present := out["Number"]; present {
		out["Number"] = Redacted
	}
	if _, present := out["VerificationCode"]; present {
		out["VerificationCode"] = Redacted
	}
	return out
}

// maskDigits keeps the last four characters of long numbers, as card receipts
// do. Four or fewer characters are masked entirely.
func maskDigits(n string) string {
	if len(n) <= 4 {
		return strings.Repeat("*", len(n))
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
