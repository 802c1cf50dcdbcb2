package storefrontserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	accountapp "github.com/Apurer/go-gin-storefront/internal/domains/accounts/application"
	cartapp "github.com/Apurer/go-gin-storefront/internal/domains/cart/application"
	cartports "github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
	catalogapp "github.com/Apurer/go-gin-storefront/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
	reviewapp "github.com/Apurer/go-gin-storefront/internal/domains/reviews/application"
	shellapp "github.com/Apurer/go-gin-storefront/internal/domains/storefront/application"
	storefrontdomain "github.com/Apurer/go-gin-storefront/internal/domains/storefront/domain"
	apierrors "github.com/Apurer/go-gin-storefront/internal/shared/errors"
	"github.com/Apurer/go-gin-storefront/internal/shared/validation"
)

// problems maps every domain's errors onto RFC 7807 responses.
var problems = apierrors.NewChainedResponder(
	mapValidationError,
	mapNotFoundError,
	mapAuthError,
	mapInputError,
	mapPersistenceError,
)

// respondError answers transport-level failures such as undecodable bodies.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	apierrors.Respond(c, apierrors.StatusProblem(status, err.Error()))
}

// respondServiceError answers errors returned by a domain service.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	problems.RespondError(c, err)
}

func mapValidationError(err error) (apierrors.ProblemDetail, bool) {
	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		return apierrors.NewValidationProblem(fields), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapNotFoundError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, catalogports.ErrNotFound) || errors.Is(err, cartports.ErrProductNotFound) {
		return apierrors.NewMissingResourceProblem("product", "Product not found", storefrontdomain.ViewProducts.Path("")), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapAuthError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, reviewapp.ErrUnauthenticated) {
		return apierrors.NewLoginRequiredProblem(err.Error(), storefrontdomain.ViewAuth.Path("")), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapInputError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, reviewapp.ErrInvalidInput),
		errors.Is(err, accountapp.ErrInvalidInput),
		errors.Is(err, accountapp.ErrInvalidSession),
		errors.Is(err, shellapp.ErrInvalidInput),
		errors.Is(err, shellapp.ErrInvalidSession):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapPersistenceError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, cartapp.ErrPersistence) {
		return apierrors.NewRetryableProblem("the cart was updated but could not be saved"), true
	}
	return apierrors.ProblemDetail{}, false
}
