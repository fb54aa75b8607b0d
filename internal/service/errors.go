package service

import (
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
)

// --- Error Definitions ---
var (
	// ErrValidation is matched by validation.Errors, which lists every bad field.
	ErrValidation = validation.ErrValidation

	ErrInvalidDate        = errors.New("invalid date format")
	ErrPastDate           = errors.New("cannot book sessions in the past")
	ErrDuplicateSlug      = errors.New("program with this slug already exists")
	ErrDuplicateEmail     = errors.New("user already exists with this email")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotActive   = errors.New("account is suspended or inactive")
	ErrStorageDisabled    = errors.New("image uploads are not configured")
	ErrUnexpected         = errors.New("unexpected error")

	// ErrNotFound is the kind shared by every resource-specific not-found error.
	ErrNotFound            = errors.New("not found")
	ErrBookingNotFound     = errors.Mark(errors.New("booking not found"), ErrNotFound)
	ErrContactNotFound     = errors.Mark(errors.New("contact not found"), ErrNotFound)
	ErrProgramNotFound     = errors.Mark(errors.New("program not found"), ErrNotFound)
	ErrTestimonialNotFound = errors.Mark(errors.New("testimonial not found"), ErrNotFound)
	ErrUserNotFound        = errors.Mark(errors.New("user not found"), ErrNotFound)
	ErrMediaNotFound       = errors.Mark(errors.New("media upload not found"), ErrNotFound)
)

// unexpected wraps a persistence or infrastructure failure.
func unexpected(err error, op string) error {
	return errors.Mark(errors.Wrap(err, op), ErrUnexpected)
}
