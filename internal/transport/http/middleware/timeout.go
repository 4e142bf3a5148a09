package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает обработку запроса общим дедлайном d.
// Уже выставленный дедлайн (например, от вышестоящего прокси) имеет
// приоритет и не перекрывается; d <= 0 выключает ограничение.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if d > 0 {
				if _, has := ctx.Deadline(); !has {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, d)
					defer cancel()

					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
