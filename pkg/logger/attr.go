package logger

import (
	"errors"
	"log/slog"
	"time"

	"github.com/withreach/gip-checkout/pkg/payload"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ValidationError records a payload validation failure as a group holding the
// failure kind, the field and the message.
func ValidationError(err error) slog.Attr {
	var (
		missing *payload.MissingFieldError
		invalid *payload.InvalidValueError
	)
	switch {
	case errors.As(err, &missing):
		return slog.Group("validation",
			slog.String("kind", "missing_field"),
			slog.String("field", missing.Key),
		)
	case errors.As(err, &invalid):
		return slog.Group("validation",
			slog.String("kind", "invalid_value"),
			slog.String("field", invalid.Field()),
			slog.String("expected", invalid.Expected),
		)
	default:
		return Error(err)
	}
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// Entity names the payload entity being validated.
func Entity(name string) slog.Attr {
	return slog.String("entity", name)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Payload logs a normalized payload after redacting card data.
func Payload(o payload.Object) slog.Attr {
	return slog.Any("payload", payload.Redact(o))
}
