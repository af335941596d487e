package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/http/respond"
	"github.com/hongminglow/movies-be/internal/logging"
)

// TokenVerifier is the slice of the token manager the middleware needs.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Authorize enforces policy on every request before it reaches next:
// no token is a 401, a token that fails verification is a 403, and a
// verified token with the wrong role is a 403 with a distinct code.
// Claims are trusted as issued; the user store is not consulted.
func Authorize(verifier TokenVerifier, policy auth.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.RequiresToken() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respond.Error(w, r, apperr.MissingToken())
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logging.FromContext(r.Context()).DebugContext(r.Context(), "token rejected", slog.Any("error", err))
				respond.Error(w, r, apperr.InvalidToken(err))
				return
			}

			if !policy.Permits(claims.Role) {
				respond.Error(w, r, apperr.Forbidden("insufficient role for this resource"))
				return
			}

			ctx := auth.WithIdentity(r.Context(), claims)
			ctx = logging.WithContext(ctx, logging.FromContext(ctx).With(slog.Int64("user_id", claims.UserID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the token from "Authorization: Bearer <token>", or "".
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
