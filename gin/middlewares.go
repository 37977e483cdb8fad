package gin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/paperchain"
	"github.com/bobinette/paperchain/errors"
)

type HandlerFunc func(*gin.Context) (interface{}, error)

func JSONFormatter(next HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := next(c)
		if err != nil {
			c.JSON(statusOf(err), map[string]interface{}{
				"message": err.Error(),
				"code":    errors.CodeOf(err),
			})
			return
		}

		c.JSON(http.StatusOK, map[string]interface{}{
			"data": res,
		})
	}
}

// statusOf maps the registry taxonomy onto HTTP statuses. Errors carrying an
// HTTP code directly (bad request parameters, missing headers) pass through.
func statusOf(err error) int {
	code := errors.CodeOf(err)
	switch code {
	case errors.CodeNotAuthorized:
		return http.StatusForbidden
	case errors.CodeDuplicateHash:
		return http.StatusConflict
	case errors.CodePaperNotFound:
		return http.StatusNotFound
	case errors.CodeInvalidHash,
		errors.CodeInvalidFundingGoal,
		errors.CodeInvalidTitle,
		errors.CodeInvalidDescription,
		errors.CodeInvalidPrincipal:
		return http.StatusBadRequest
	}

	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusInternalServerError
}

// caller extracts the caller identity from the X-Caller header. The registry
// trusts whatever identity the environment supplies; requests without one
// cannot perform identity-gated operations.
func caller(c *gin.Context) (paperchain.Principal, error) {
	p := c.GetHeader("X-Caller")
	if p == "" {
		return paperchain.NullPrincipal, errors.New("missing X-Caller header", errors.WithCode(http.StatusUnauthorized))
	}
	return paperchain.Principal(p), nil
}

// height extracts the environment's current height from the X-Height header,
// defaulting to 0 when absent.
func height(c *gin.Context) (uint64, error) {
	v := c.GetHeader("X-Height")
	if v == "" {
		return 0, nil
	}

	h, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.New("invalid X-Height header", errors.WithCode(http.StatusBadRequest), errors.WithCause(err))
	}
	return h, nil
}

func parseHash(s string) (paperchain.Hash, error) {
	h, err := paperchain.ParseHash(s)
	if err != nil {
		return paperchain.Hash{}, errors.New("invalid hash", errors.InvalidHash(), errors.WithCause(err))
	}
	return h, nil
}

func hashParam(c *gin.Context) (paperchain.Hash, error) {
	h, err := paperchain.ParseHash(c.Param("hash"))
	if err != nil {
		return paperchain.Hash{}, errors.New("invalid hash parameter", errors.WithCode(http.StatusBadRequest), errors.WithCause(err))
	}
	return h, nil
}
