package payload

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	decimalRegex  = regexp.MustCompile(`^[0-9]+(\.[0-9]*)?$`)
	digitsRegex   = regexp.MustCompile(`^[0-9]+$`)
	countryRegex  = regexp.MustCompile(`^[A-Z]{2}$`)
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	dateRegex     = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$`)
)

var (
	Boolean = Kind[bool]{
		name: "boolean",
		parse: func(v any) (bool, bool) {
			b, ok := v.(bool)
			return b, ok
		},
	}

	String = stringKind("string", func(string) bool { return true })

	// Decimal is a non-negative amount kept as its string form.
	Decimal = stringKind("decimal value", decimalRegex.MatchString)

	// Number is an unsigned integer kept as its string form.
	Number = stringKind("number", digitsRegex.MatchString)

	URL = stringKind("URL", validURL)

	Country = stringKind("ISO 3166-1-alpha-2 country code", countryRegex.MatchString)

	Currency = stringKind("ISO 4217 currency code", currencyRegex.MatchString)

	UUID = stringKind("UUID", validUUID)

	// Date accepts YYYY-MM-DD with month and day ranges checked; impossible
	// calendar days such as 2024-02-30 pass.
	Date = stringKind("date", dateRegex.MatchString)

	Email = stringKind("email address", validEmail)

	IP = stringKind("public IP address", publicIP)
)

func validURL(value string) bool {
	if strings.TrimSpace(value) != value || value == "" {
		return false
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// validUUID rejects the braced and urn forms uuid.Parse would otherwise accept.
func validUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return false
	}
	domain := value[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
