package application

import (
	"errors"
	"fmt"

	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/storefront/domain"
)

var (
	// ErrInvalidInput signals the request violated a shell invariant.
	ErrInvalidInput = errors.New("invalid navigation input")
	// ErrInvalidSession rejects calls without a session id.
	ErrInvalidSession = errors.New("session id is required")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingProductID) ||
		errors.Is(err, catalogdomain.ErrInvalidDimension) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
