package middlewares

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	ClientIDHeader = "X-Client-ID"
	ClientCookie   = "satsang_client"
	clientMaxAge   = 365 * 24 * 60 * 60
)

var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// ClientScope identifica o contexto de navegação do participante. Ordem: header
// X-Client-ID, cookie satsang_client, ou um novo ID emitido como cookie.
func ClientScope(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		scopeID := r.Header.Get(ClientIDHeader)

		if !clientIDPattern.MatchString(scopeID) {
			scopeID = ""
			if c, err := r.Cookie(ClientCookie); err == nil && clientIDPattern.MatchString(c.Value) {
				scopeID = c.Value
			}
		}

		if scopeID == "" {
			scopeID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookie,
				Value:    scopeID,
				Path:     "/",
				MaxAge:   clientMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ScopeKey, scopeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// ScopeFrom retorna o escopo resolvido por ClientScope.
func ScopeFrom(ctx context.Context) string {
	scopeID, _ := ctx.Value(ScopeKey).(string)
	return scopeID
}
