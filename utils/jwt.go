package utils

import (
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// OperatorClaims is what the terminal reads from the operator's token.
// The token is issued and verified by the remote API; here it is only
// decoded for attribution.
type OperatorClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Operator returns a display name for the token's bearer, or "" when the
// token cannot be decoded.
func Operator(tokenStr string) string {
	tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))
	if tokenStr == "" {
		return ""
	}
	claims := &OperatorClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return ""
	}
	switch {
	case claims.Name != "":
		return claims.Name
	case claims.Email != "":
		return claims.Email
	default:
		return claims.Subject
	}
}

// BearerToken extracts the raw token of an Authorization header value.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// ParseUint parses a path id; 0 means invalid.
func ParseUint(s string) uint {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
