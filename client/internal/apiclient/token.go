package apiclient

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parlor-chat/parlor/shared/logger"
)

// Claims are the token fields the client cares about. The token is not
// verified here - the server is the authority - it is only inspected so
// the client can name its own user and warn before the session dies.
type Claims struct {
	UserId    int64
	ExpiresAt time.Time
}

// TokenClaims parses the bearer token without verifying its signature.
func (c *APIClient) TokenClaims() (Claims, error) {
	var out Claims

	token, _, err := jwt.NewParser().ParseUnverified(c.token, jwt.MapClaims{})
	if err != nil {
		return out, fmt.Errorf("cannot parse session token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return out, fmt.Errorf("unexpected claims shape in session token")
	}

	if sub, ok := claims["sub"].(float64); ok {
		out.UserId = int64(sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

func (c *APIClient) warnIfTokenExpiring() {
	claims, err := c.TokenClaims()
	if err != nil || claims.ExpiresAt.IsZero() {
		return
	}
	if left := time.Until(claims.ExpiresAt); left < 10*time.Minute {
		logger.Log.Warn("session token expires soon", "expires_at", claims.ExpiresAt, "left", left)
	}
}
