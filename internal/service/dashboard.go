package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/college-console/pkg/log"
)

// DashboardCounts — сводные счётчики документов по коллекциям контента
// (плоская карта имя коллекции -> количество).
//
// Поведение:
//   - при подключённом кэше счётчики читаются из него; промах или ошибка
//     кэша не фатальны — считаем по БД и лучшим образом обновляем кэш;
//   - ErrInternal — ошибка полного пересчёта по БД.
func (s *Service) DashboardCounts(ctx context.Context) (map[string]int64, error) {
	const op = "service/dashboard/DashboardCounts"

	lg := log.From(ctx).With("op", op)

	if s.counts != nil {
		cached, ok, err := s.counts.Get(ctx)
		if err != nil {
			lg.Warn("counts cache read failed", "err", err)
		} else if ok {
			return cached, nil
		}
	}

	counts, err := s.storage.CollectionCounts(ctx)
	if err != nil {
		lg.Error("storage error on CollectionCounts", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if s.counts != nil {
		if err := s.counts.Set(ctx, counts, s.cfg.Redis.TTL); err != nil {
			lg.Warn("counts cache write failed", "err", err)
		}
	}

	return counts, nil
}

// afterContentChange вызывается после любой мутации контента:
// сбрасывает кэш счётчиков (лучшим образом, ошибки только логируются).
func (s *Service) afterContentChange(ctx context.Context) {
	if s.counts == nil {
		return
	}

	if err := s.counts.Invalidate(ctx); err != nil {
		log.From(ctx).Warn("counts cache invalidate failed", "err", err)
	}
}
