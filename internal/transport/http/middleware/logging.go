package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/college-console/pkg/log"
)

// Logging прикрепляет к контексту запроса логгер с request_id (его уже
// проставил RequestID, стоящий выше в цепочке) и по завершении обработки
// пишет одну сводную запись: метод, путь, статус, байты, длительность.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lg := l
			if rid := r.Header.Get("X-Request-Id"); rid != "" {
				lg = lg.With(slog.String("request_id", rid))
			}
			r = r.WithContext(logctx.Into(r.Context(), lg))

			sw := newStatusWriter(w)
			started := time.Now()

			next.ServeHTTP(sw, r)

			lg.LogAttrs(r.Context(), slog.LevelInfo, "request served",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.count),
				slog.Duration("elapsed", time.Since(started)),
			)
		})
	}
}
