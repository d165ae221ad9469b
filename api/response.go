package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/withreach/gip-checkout/pkg/checkout"
	"github.com/withreach/gip-checkout/pkg/payload"
)

// Response is the envelope of every API response.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	status, detail := errorToDetail(err)
	writeJSON(w, status, Response{Error: detail})
}

// errorToDetail maps err to a status code and response detail. Anything not
// recognized is reported as an internal error without its message.
func errorToDetail(err error) (int, *ErrorDetail) {
	var (
		missing *payload.MissingFieldError
		invalid *payload.InvalidValueError
	)
	switch {
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "missing_field",
			Message: missing.Error(),
			Details: translationDetails(missing),
		}
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "invalid_value",
			Message: invalid.Error(),
			Details: translationDetails(invalid),
		}
	case errors.Is(err, checkout.ErrUnknownEntity):
		return http.StatusNotFound, &ErrorDetail{
			Code:    "unknown_entity",
			Message: err.Error(),
			Details: map[string][]string{"entities": checkout.Entities()},
		}
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: "body_too_large", Message: err.Error()}
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_json", Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{
			Code:    "internal_error",
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
}

type translatable interface {
	TranslationKey() string
	TranslationValues() map[string]any
}

// translationDetails exposes the message key and its values so clients can
// render a localized message.
func translationDetails(err translatable) map[string][]string {
	details := map[string][]string{"translation_key": {err.TranslationKey()}}
	for k, v := range err.TranslationValues() {
		details[k] = []string{fmt.Sprint(v)}
	}
	return details
}
