package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/college-console/pkg/log"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

// EventKeys — фиксированные ключи документов событий. Других документов
// в коллекции не бывает: ключи заданы руками, а не генерируются.
var EventKeys = []string{"mat-kabbadi", "footprints"}

// EventInput — полная перезапись документа события.
// Heading, Description, GoogleFormURL и FlipbookURL обязательны;
// остальные поля карточки опциональны.
type EventInput struct {
	Heading       string
	Description   string
	GoogleFormURL string
	FlipbookURL   string
	Timing        []string
	GetInTouch    string
	Venue         string
	GoogleMapURL  string
}

// EventByKey — чтение документа события по фиксированному ключу.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — ключ не из словаря EventKeys;
//   - ErrNotFound — документ ещё не создавался;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) EventByKey(ctx context.Context, key string) (*models.EventSection, error) {
	const op = "service/events/EventByKey"

	key = strings.TrimSpace(key)
	lg := log.From(ctx).With("op", op, "key", key)

	if !validEventKey(key) {
		lg.Warn("invalid argument: unknown event key")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ev, err := s.storage.EventByKey(ctx, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("event not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on EventByKey", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return ev, nil
}

// SaveEvent — полная перезапись документа события (создаёт при отсутствии).
// Частичного обновления нет: сохраняется весь документ, последний писатель
// побеждает.
//
// Валидация: ключ из словаря EventKeys; Heading, Description, GoogleFormURL,
// FlipbookURL нормализуются и не должны быть пустыми — до любого обращения
// к хранилищу.
func (s *Service) SaveEvent(ctx context.Context, key string, in EventInput) (*models.EventSection, error) {
	const op = "service/events/SaveEvent"

	key = strings.TrimSpace(key)
	lg := log.From(ctx).With("op", op, "key", key)

	if !validEventKey(key) {
		lg.Warn("invalid argument: unknown event key")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Heading = strings.TrimSpace(in.Heading)
	in.Description = strings.TrimSpace(in.Description)
	in.GoogleFormURL = strings.TrimSpace(in.GoogleFormURL)
	in.FlipbookURL = strings.TrimSpace(in.FlipbookURL)

	if in.Heading == "" || in.Description == "" || in.GoogleFormURL == "" || in.FlipbookURL == "" {
		lg.Warn("invalid argument: missing required fields")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ev := models.EventSection{
		Key:           key,
		Heading:       in.Heading,
		Description:   in.Description,
		GoogleFormURL: in.GoogleFormURL,
		FlipbookURL:   in.FlipbookURL,
		Timing:        in.Timing,
		GetInTouch:    strings.TrimSpace(in.GetInTouch),
		Venue:         strings.TrimSpace(in.Venue),
		GoogleMapURL:  strings.TrimSpace(in.GoogleMapURL),
	}

	if err := s.storage.UpsertEvent(ctx, ev); err != nil {
		lg.Error("storage error on UpsertEvent", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.afterContentChange(ctx)

	return &ev, nil
}

func validEventKey(key string) bool {
	for _, k := range EventKeys {
		if k == key {
			return true
		}
	}

	return false
}
