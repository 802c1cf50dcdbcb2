package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// Respond writes the problem, defaulting Instance to the request path.
func Respond(c *gin.Context, problem ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// ErrorMapper maps a domain error to a problem; ok is false when the error
// is not one the mapper knows.
type ErrorMapper func(err error) (problem ProblemDetail, ok bool)

// ChainedResponder tries its mappers in order before the fallback.
type ChainedResponder struct {
	mappers []ErrorMapper
}

func NewChainedResponder(mappers ...ErrorMapper) *ChainedResponder {
	return &ChainedResponder{mappers: mappers}
}

// Problem resolves err. A ProblemDetail in the chain is used as is; anything
// unmapped becomes an internal error.
func (r *ChainedResponder) Problem(err error) ProblemDetail {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			return problem
		}
	}
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem
	}
	return ErrInternal.WithDetail(err.Error())
}

// RespondError writes the problem resolved for err.
func (r *ChainedResponder) RespondError(c *gin.Context, err error) {
	Respond(c, r.Problem(err))
}
