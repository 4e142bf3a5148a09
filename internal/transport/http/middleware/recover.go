package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/pribylovaa/college-console/internal/service"
	"github.com/pribylovaa/college-console/internal/transport/http/apierrors"
	logctx "github.com/pribylovaa/college-console/pkg/log"
)

// Recover останавливает панику обработчика: причина и стек уходят в лог,
// клиент получает стандартный ответ 500 без подробностей.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logctx.From(r.Context()).Error("handler panic",
					"method", r.Method,
					"path", r.URL.Path,
					"reason", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)

				apierrors.WriteError(w, r, service.ErrInternal)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
