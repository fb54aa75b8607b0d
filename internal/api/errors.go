package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"reflect"
	"slices"
	"strconv"

	"arena45/backend/internal/service"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// errorMapping ties a service error kind to its status and public message.
type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{service.ErrInvalidDate, http.StatusBadRequest, "Invalid date format"},
	{service.ErrPastDate, http.StatusBadRequest, "Cannot book sessions in the past"},
	{service.ErrDuplicateSlug, http.StatusBadRequest, "Program with this slug already exists"},
	{service.ErrDuplicateEmail, http.StatusBadRequest, "User already exists with this email"},
	{service.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrAccountNotActive, http.StatusForbidden, "Account is suspended or inactive"},
	{service.ErrStorageDisabled, http.StatusServiceUnavailable, "Image uploads are not available"},
	{service.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{service.ErrContactNotFound, http.StatusNotFound, "Contact not found"},
	{service.ErrProgramNotFound, http.StatusNotFound, "Program not found"},
	{service.ErrTestimonialNotFound, http.StatusNotFound, "Testimonial not found"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrMediaNotFound, http.StatusNotFound, "Media upload not found"},
	{service.ErrNotFound, http.StatusNotFound, "Not found"},
}

// ErrorWriter turns service errors into envelopes. Internal detail is only
// exposed outside production.
type ErrorWriter struct {
	logger       *slog.Logger
	exposeDetail bool
}

func NewErrorWriter(logger *slog.Logger, exposeDetail bool) *ErrorWriter {
	return &ErrorWriter{logger: logger, exposeDetail: exposeDetail}
}

// Write responds with the status for err. fallback is the message used for
// unexpected failures, e.g. "Failed to create booking".
func (w *ErrorWriter) Write(c *gin.Context, err error, fallback string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "Validation error",
			Errors:  verrs,
		})
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			abortWithError(c, m.status, m.message)
			return
		}
	}

	_ = c.Error(err)
	w.logger.ErrorContext(c.Request.Context(), fallback,
		slog.String("request_id", requestID(c)),
		slog.String("error", err.Error()),
	)
	resp := Response{Success: false, Message: fallback}
	if w.exposeDetail {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}

// BadRequest reports a body or query that could not be decoded, naming
// the offending field where the decoder tells us which one it was.
func (w *ErrorWriter) BadRequest(c *gin.Context, err error) {
	resp := Response{Success: false, Message: "Validation error", Errors: bindErrors(c, err)}
	if w.exposeDetail {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

func bindErrors(c *gin.Context, err error) validation.Errors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.Single(typeErr.Field,
			fmt.Sprintf("%s must be %s", typeErr.Field, jsonKind(typeErr.Type)))
	}

	// Form binding returns the bare strconv error, so find the query key
	// that carried the rejected value.
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		query := c.Request.URL.Query()
		for _, key := range slices.Sorted(maps.Keys(query)) {
			if slices.Contains(query[key], numErr.Num) {
				return validation.Single(key, fmt.Sprintf("%s has an invalid value %q", key, numErr.Num))
			}
		}
		return validation.Single("query", fmt.Sprintf("invalid value %q", numErr.Num))
	}

	return validation.Single("body", "Request body must be valid JSON")
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	default:
		return "an object"
	}
}
