package httpx

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
)

// Sentinel errors shared by the entity packages.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// RespondError maps service errors to HTTP responses.
//
// Remote failures keep their upstream status so the caller sees exactly
// what the content API reported; the body travels in the detail field.
func RespondError(w http.ResponseWriter, err error) {
	var apiErr *strapi.APIError
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &apiErr):
		Problem(w, apiErr.Status, "Upstream Error", apiErr.Body)
	case errors.As(err, &fieldErrs):
		Problem(w, http.StatusBadRequest, "Validation Failed", fieldErrs.Error())
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
