package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/college-console/pkg/log"

	"github.com/pribylovaa/college-console/internal/extract"
	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

// BuzzInput — создание/полная перезапись объявления.
type BuzzInput struct {
	Name     string
	Category string
	Date     time.Time
	Content  string
}

// BuzzListItem — строка таблицы объявлений: сама запись плюс извлечённые
// из HTML-содержимого поля карточки (заголовок/тизер/обложка).
type BuzzListItem struct {
	models.Buzz
	Preview extract.Content
}

// BuzzPageResult — страница объявлений после фильтра.
type BuzzPageResult struct {
	Items []BuzzListItem
	State PageState
}

// BuzzPage — табличный экран объявлений.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — page_size вне [0, max];
//   - ErrInternal — ошибки стораджа/курсора.
func (s *Service) BuzzPage(ctx context.Context, q PageQuery) (*BuzzPageResult, error) {
	const op = "service/buzz/BuzzPage"

	state, err := loadPage(ctx, s.buzzPager, q, s.cfg.Limits.Max)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		log.From(ctx).Error("buzz page load failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	items := s.buzzPager.Items()
	filtered := filterPage(items, func(b models.Buzz) bool {
		return matches(q.Search, q.Category, b.Category, b.Name, b.Category)
	})

	out := make([]BuzzListItem, 0, len(filtered))
	for _, b := range filtered {
		out = append(out, BuzzListItem{Buzz: b, Preview: extract.Extract(b.Content)})
	}

	return &BuzzPageResult{Items: out, State: PageState(state)}, nil
}

// CreateBuzz — создание объявления.
//
// Валидация: Name, Category и Content нормализуются (TrimSpace) и не должны
// быть пустыми; Date обязательна.
func (s *Service) CreateBuzz(ctx context.Context, in BuzzInput) (*models.Buzz, error) {
	const op = "service/buzz/CreateBuzz"

	lg := log.From(ctx).With("op", op)

	b, err := validateBuzz(in)
	if err != nil {
		lg.Warn("invalid argument", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.CreateBuzz(ctx, *b)
	if err != nil {
		lg.Error("storage error on CreateBuzz", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.afterContentChange(ctx)

	return result, nil
}

// UpdateBuzz — полная перезапись объявления по id.
//
// Поведение/ошибки:
//   - ErrNotFound — запись не найдена (включая неверный формат id);
//   - ErrInvalidArgument — пустой id или невалидные поля;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) UpdateBuzz(ctx context.Context, id string, in BuzzInput) (*models.Buzz, error) {
	const op = "service/buzz/UpdateBuzz"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	b, err := validateBuzz(in)
	if err != nil {
		lg.Warn("invalid argument", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.UpdateBuzz(ctx, id, *b)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("buzz not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateBuzz", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.afterContentChange(ctx)

	return result, nil
}

// DeleteBuzz — удаление объявления по id.
func (s *Service) DeleteBuzz(ctx context.Context, id string) error {
	const op = "service/buzz/DeleteBuzz"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteBuzz(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("buzz not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeleteBuzz", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.afterContentChange(ctx)

	return nil
}

func validateBuzz(in BuzzInput) (*models.Buzz, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, errors.New("empty name")
	}

	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		return nil, errors.New("empty category")
	}

	if strings.TrimSpace(in.Content) == "" {
		return nil, errors.New("empty content")
	}

	if in.Date.IsZero() {
		return nil, errors.New("empty date")
	}

	return &models.Buzz{
		Name:     in.Name,
		Category: in.Category,
		Date:     in.Date,
		Content:  in.Content,
	}, nil
}
