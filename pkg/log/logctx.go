// log передаёт request-scoped *slog.Logger через context.Context: транспорт
// прикрепляет логгер с атрибутами запроса, нижние слои достают его, ничего
// не зная о транспорте.
package log

import (
	"context"
	"log/slog"
)

// loggerKey — непубличный тип ключа, исключает коллизии с чужими значениями контекста.
type loggerKey struct{}

// Into возвращает контекст с прикреплённым логгером.
// Нулевой логгер контекст не меняет.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}

	return context.WithValue(ctx, loggerKey{}, l)
}

// From возвращает логгер запроса; если в контексте его нет — slog.Default().
func From(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}

	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}
