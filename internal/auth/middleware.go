package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// TokenValidator is satisfied by *Manager.
type TokenValidator interface {
	Validate(token string) (Identity, error)
}

const tokenCookie = "token"

// Middleware rejects requests without a valid token and stores the identity
// in the context. The Authorization bearer token wins over the token cookie.
func Middleware(api huma.API, validator TokenValidator) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := tokenFromRequest(ctx)
		if token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		identity, err := validator.Validate(token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next(huma.WithContext(ctx, ContextWithIdentity(ctx.Context(), identity)))
	}
}

// APIKeyMiddleware requires the x-api-key header to equal key.
func APIKeyMiddleware(api huma.API, key string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		provided := ctx.Header("x-api-key")
		if provided == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "API key is required")
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			_ = huma.WriteErr(api, ctx, http.StatusForbidden, "Invalid API key")
			return
		}
		next(ctx)
	}
}

func tokenFromRequest(ctx huma.Context) string {
	if fields := strings.Fields(ctx.Header("Authorization")); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1]
	}

	cookieHeader := ctx.Header("Cookie")
	if cookieHeader == "" {
		return ""
	}
	req := http.Request{Header: http.Header{"Cookie": []string{cookieHeader}}}
	cookie, err := req.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
