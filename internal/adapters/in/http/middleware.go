package http

import (
	"net/http"
	"strings"

	"github.com/DevonBastiansz/courier-manager/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is where the verified identity lives in the echo context.
const claimsContextKey = "accessClaims"

// requireAuth returns middleware that verifies the Bearer token and stores
// the caller's identity in the request context. Requests without a valid
// token are rejected with 401 before the handler runs.
func requireAuth(signer ports.TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw, ok := bearerToken(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "Authentication required. Please log in.",
				})
			}

			claims, err := signer.Verify(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "Invalid or expired token. Please log in again.",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(ctx echo.Context) (string, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}

// callerClaims returns the verified identity stored by requireAuth.
// Only call from handlers behind the middleware.
func callerClaims(ctx echo.Context) (ports.AccessClaims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(ports.AccessClaims)
	return claims, ok
}
