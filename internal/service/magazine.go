package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/college-console/pkg/log"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

// MagazineInput — полная перезапись единственного журнала.
type MagazineInput struct {
	Name string
	URL  string
}

// Magazine — чтение текущего журнала.
//
// Поведение/ошибки:
//   - ErrNotFound — журнал ещё не создавался или удалён;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) Magazine(ctx context.Context) (*models.Magazine, error) {
	const op = "service/magazine/Magazine"

	m, err := s.storage.Magazine(ctx)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			log.From(ctx).Error("storage error on Magazine", "op", op, "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return m, nil
}

// SaveMagazine — создание/полная перезапись журнала.
//
// Валидация: имя непустое; ссылка — абсолютный http(s)-URL.
func (s *Service) SaveMagazine(ctx context.Context, in MagazineInput) (*models.Magazine, error) {
	const op = "service/magazine/SaveMagazine"

	lg := log.From(ctx).With("op", op)

	in.Name = strings.TrimSpace(in.Name)
	in.URL = strings.TrimSpace(in.URL)

	if in.Name == "" || !validHTTPURL(in.URL) {
		lg.Warn("invalid argument: empty name or malformed url")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.UpsertMagazine(ctx, models.Magazine{
		Name: in.Name,
		URL:  in.URL,
	})
	if err != nil {
		lg.Error("storage error on UpsertMagazine", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.afterContentChange(ctx)

	return result, nil
}

// DeleteMagazine — удаление журнала.
//
// Поведение/ошибки:
//   - ErrNotFound — журнала нет;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) DeleteMagazine(ctx context.Context) error {
	const op = "service/magazine/DeleteMagazine"

	if err := s.storage.DeleteMagazine(ctx); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			log.From(ctx).Error("storage error on DeleteMagazine", "op", op, "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.afterContentChange(ctx)

	return nil
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
