package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"theark/internal/logger"
	"theark/internal/session"
)

// ProtectedPrefix is the path prefix guarded by the access gate.
const ProtectedPrefix = "/app"

// LoginPath is where denied requests are redirected.
const LoginPath = "/"

// Context keys set for requests that pass the gate.
const (
	LoginKey   = "login"
	TokenIDKey = "tokenID"
)

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*session.Claims, error)
}

// Decision is the outcome of the access gate for one request.
type Decision int

const (
	Allow Decision = iota
	Deny
)

// IsProtected reports whether path falls under ProtectedPrefix. Only the
// prefix itself and paths below it match, so "/application" is public.
func IsProtected(path string) bool {
	return path == ProtectedPrefix || strings.HasPrefix(path, ProtectedPrefix+"/")
}

// Decide applies the gate rules: public paths are allowed, protected paths
// need a token that verifies. The returned error is for server-side logging
// only and is nil when the request is allowed.
func Decide(ctx context.Context, path, token string, verifier TokenVerifier) (Decision, *session.Claims, error) {
	if !IsProtected(path) {
		return Allow, nil, nil
	}
	if token == "" {
		return Deny, nil, errMissingCookie
	}
	claims, err := verifier.Verify(ctx, token)
	if err != nil {
		return Deny, nil, err
	}
	return Allow, claims, nil
}

type gateError string

func (e gateError) Error() string { return string(e) }

const errMissingCookie = gateError("session cookie missing")

// AccessGate returns a Gin middleware that guards ProtectedPrefix with the
// session cookie. Every denial is the same 302 redirect to LoginPath,
// whatever the cause.
func AccessGate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(session.CookieName)

		decision, claims, err := Decide(c.Request.Context(), c.Request.URL.Path, token, verifier)
		if decision == Deny {
			logger.Named("gate").Debugw("access denied",
				"path", c.Request.URL.Path,
				"reason", err.Error(),
				"client_ip", c.ClientIP(),
			)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if claims != nil {
			c.Set(LoginKey, claims.Login)
			c.Set(TokenIDKey, claims.ID)
		}
		c.Next()
	}
}
