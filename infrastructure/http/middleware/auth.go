package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/response"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// AuthMiddleware validates bearer tokens and gates routes on role
// claims. Failures are uniform: 401 for anything wrong with the token,
// 403 for a missing role, without detail about which check failed.
type AuthMiddleware struct {
	tokenService outbound.TokenService
}

func NewAuthMiddleware(tokenService outbound.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// RequireAuth verifies the Authorization header and stores the verified
// claims in the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			response.Unauthorized(w, "Erro: Não autorizado!")
			return
		}

		claims, err := m.tokenService.Verify(token)
		if err != nil {
			response.Unauthorized(w, "Erro: Não autorizado!")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole builds on RequireAuth and additionally demands the given
// role claim.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFrom(r.Context())
			if claims == nil || !hasRole(claims.Roles, role) {
				response.Forbidden(w, "Erro: Acesso negado!")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// OptionalAuth attaches claims when a valid token is present and lets
// the request through either way.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			if claims, err := m.tokenService.Verify(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFrom returns the verified token claims stored by RequireAuth,
// or nil.
func ClaimsFrom(ctx context.Context) *outbound.TokenClaims {
	claims, _ := ctx.Value(claimsKey).(*outbound.TokenClaims)
	return claims
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
