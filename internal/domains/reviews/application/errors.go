package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-storefront/internal/shared/validation"
)

var (
	// ErrInvalidInput signals the review form failed validation.
	ErrInvalidInput = errors.New("invalid review input")
	// ErrUnauthenticated rejects reviews from sessions that are not logged in.
	ErrUnauthenticated = errors.New("log in to review")
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
