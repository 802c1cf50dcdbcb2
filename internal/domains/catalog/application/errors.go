package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the query violated a catalog invariant.
	ErrInvalidInput = errors.New("invalid catalog query")
	// ErrInvalidLimit rejects negative page sizes.
	ErrInvalidLimit = errors.New("limit must not be negative")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyProductID) ||
		errors.Is(err, domain.ErrInvalidDimension) ||
		errors.Is(err, ErrInvalidLimit) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
