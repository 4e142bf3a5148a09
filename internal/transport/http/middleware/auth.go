package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/college-console/internal/service"
	"github.com/pribylovaa/college-console/internal/transport/http/apierrors"
)

type ctxKey string

// Ключи контекста с личностью аутентифицированного пользователя.
const (
	CtxUserID ctxKey = "user_id"
	CtxEmail  ctxKey = "email"
)

// Authenticator проверяет access-токен и возвращает личность пользователя.
type Authenticator interface {
	Authenticate(token string) (uuid.UUID, string, error)
}

// Auth гейтит запрос по Bearer-токену: без валидного токена — 401 в
// унифицированном формате, дальше запрос не идёт. Личность пользователя
// кладётся в контекст по ключам CtxUserID/CtxEmail.
func Auth(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			uid, email, err := a.Authenticate(token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, uid)
			ctx = context.WithValue(ctx, CtxEmail, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken извлекает сырой токен из Authorization: Bearer <token>.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "

	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
