package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
)

var (
	// ErrInvalidInput signals the request violated a cart invariant.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrInvalidSession rejects requests without a session identifier.
	ErrInvalidSession = errors.New("session id is required")
	// ErrPersistence wraps key-value store failures while saving the cart.
	ErrPersistence = errors.New("cart persistence failed")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrQuantityLimit) ||
		errors.Is(err, domain.ErrEmptyProductID) ||
		errors.Is(err, domain.ErrEmptyColor) ||
		errors.Is(err, domain.ErrEmptySize) ||
		errors.Is(err, ErrInvalidSession) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
