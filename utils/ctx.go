package utils

import (
	"context"

	"github.com/AndersonMairnck/frontFynanceo/repository"

	"github.com/gin-gonic/gin"
)

const (
	ctxToken    = "token"
	ctxOperator = "operator"
)

// SetOperator is called by the token middleware.
func SetOperator(c *gin.Context, token, operator string) {
	c.Set(ctxToken, token)
	c.Set(ctxOperator, operator)
}

func CurrentOperator(c *gin.Context) string {
	if v, ok := c.Get(ctxOperator); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RequestContext returns the request context carrying the caller's token
// (forwarded to the remote API) and operator name.
func RequestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if v, ok := c.Get(ctxToken); ok {
		if s, ok := v.(string); ok {
			ctx = repository.WithToken(ctx, s)
		}
	}
	return repository.WithOperator(ctx, CurrentOperator(c))
}
