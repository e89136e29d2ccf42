package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-cms/internal/auth"
	"clinic-cms/internal/model"

	"github.com/rs/zerolog"
)

// TokenVerifier validates admin tokens.
type TokenVerifier interface {
	Parse(token string) (*auth.Claims, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the admin claims attached by AuthGuard.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// AuthGuard requires a valid Bearer token in the Authorization header and
// attaches its claims to the request context.
func AuthGuard(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "auth-guard").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				writeError(w, r, http.StatusUnauthorized, model.ErrMissingToken.Code, model.ErrMissingToken.Message)
				return
			}

			claims, err := verifier.Parse(token)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("invalid bearer token")
				writeError(w, r, http.StatusUnauthorized, model.ErrInvalidToken.Code, model.ErrInvalidToken.Message)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
