package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/onu24/learnsphere-v1/internal/app"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

// TokenParser validates a bearer token and returns the caller identity.
type TokenParser interface {
	ParseToken(token string) (app.Identity, error)
}

type identityKey struct{}

// Authenticate extracts an optional bearer token. A missing header
// passes through anonymously; a present but invalid token is rejected
// so clients notice expired sessions instead of silently downgrading.
func Authenticate(parser TokenParser, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, codeInvalidCredentials, "malformed authorization header")
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeInvalidCredentials, domain.ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFrom(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anyone without the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
			return
		}
		if identity.Role != domain.RoleAdmin {
			writeError(w, http.StatusForbidden, codeForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func identityFrom(ctx context.Context) (app.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(app.Identity)
	return identity, ok
}
