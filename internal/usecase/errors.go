package usecase

import (
	"context"
	"errors"

	"codecraft/internal/repository"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyApplied    = errors.New("you have already applied for this job")
	ErrAlreadyRegistered = errors.New("you are already registered for this hackathon")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUpstream          = errors.New("upstream unavailable")
	ErrNotConfigured     = errors.New("feature not configured")
	ErrInternal          = errors.New("internal error")
)

// mapStoreError folds repository errors into use-case sentinels.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrSessionNotFound):
		return ErrUnauthorized
	case errors.Is(err, repository.ErrJobNotFound),
		errors.Is(err, repository.ErrApplicationNotFound),
		errors.Is(err, repository.ErrBookingNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrAlreadyApplied):
		return ErrAlreadyApplied
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return ErrAlreadyRegistered
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return ErrInternal
	}
}
