package middlewares

import (
	"context"
	"net/http"
	"strings"

	"satsang/internal/infra/logger"
	"satsang/internal/ports"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	ScopeKey    contextKey = "scope"
)

// OptionalAuth valida o Bearer token quando presente. Nunca rejeita a requisição:
// sem token, ou com token inválido, o participante segue como anônimo.
func OptionalAuth(tokenService ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || tokenService == nil {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := tokenService.ValidateToken(parts[1])
			if err != nil {
				logger.Debug("Token ignorado", "erro", err)
				next.ServeHTTP(w, r)
				return
			}

			// Injeta a identidade no contexto
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// IdentityFrom retorna o participante autenticado, ou nil para anônimos.
func IdentityFrom(ctx context.Context) *ports.Identity {
	identity, _ := ctx.Value(IdentityKey).(*ports.Identity)
	return identity
}
