package middlewares

import (
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

// OperatorMiddleware picks up the operator's bearer token (header, or the
// "token" query parameter for websocket upgrades). The token is not
// verified here: it is forwarded to the API, which owns authentication.
// Requests without a token fall back to the configured service token.
func OperatorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.BearerToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}
		if tokenStr != "" {
			utils.SetOperator(c, tokenStr, utils.Operator(tokenStr))
		}
		c.Next()
	}
}
