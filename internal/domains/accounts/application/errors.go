package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-storefront/internal/shared/validation"
)

var (
	// ErrInvalidInput signals the submitted form failed validation.
	ErrInvalidInput = errors.New("invalid account input")
	// ErrInvalidSession rejects calls without a session id.
	ErrInvalidSession = errors.New("session id is required")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
