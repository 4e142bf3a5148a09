package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pribylovaa/college-console/pkg/log"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

// UploadCircularInput — загрузка экзаменационного циркуляра: заголовок + PDF.
type UploadCircularInput struct {
	Title       string
	FileName    string
	ContentType string
	File        io.Reader
	Size        int64
}

// CircularsPageResult — страница циркуляров после фильтра.
type CircularsPageResult struct {
	Items []models.ExamCircular
	State PageState
}

// CircularsPage — табличный экран экзаменационных циркуляров.
func (s *Service) CircularsPage(ctx context.Context, q PageQuery) (*CircularsPageResult, error) {
	const op = "service/circulars/CircularsPage"

	state, err := loadPage(ctx, s.circularPager, q, s.cfg.Limits.Max)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		log.From(ctx).Error("circulars page load failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	items := filterPage(s.circularPager.Items(), func(c models.ExamCircular) bool {
		return matches(q.Search, "", "", c.Title, c.FileName)
	})

	return &CircularsPageResult{Items: items, State: PageState(state)}, nil
}

// UploadCircular — двухшаговая загрузка циркуляра (PDF в блоб-хранилище,
// затем метаданные в БД); шаги не атомарны, как и у билетов.
func (s *Service) UploadCircular(ctx context.Context, in UploadCircularInput) (*models.ExamCircular, error) {
	const op = "service/circulars/UploadCircular"

	lg := log.From(ctx).With("op", op, "file_name", in.FileName)

	in.Title = strings.TrimSpace(in.Title)
	in.FileName = strings.TrimSpace(in.FileName)

	if in.Title == "" || in.FileName == "" || in.File == nil {
		lg.Warn("invalid argument: missing required fields")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Size > s.cfg.Upload.MaxSizeBytes {
		lg.Warn("file too large", "size", in.Size)
		return nil, fmt.Errorf("%s: %w", op, ErrFileTooLarge)
	}

	blob, err := s.files.Upload(ctx, circularPrefix, in.FileName, in.ContentType, in.File, in.Size)
	if err != nil {
		lg.Error("blob upload failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	result, err := s.storage.CreateCircular(ctx, models.ExamCircular{
		Title:       in.Title,
		FileName:    in.FileName,
		PDFURL:      blob.URL,
		StoragePath: blob.StoragePath,
	})
	if err != nil {
		lg.Error("metadata insert failed, blob orphaned",
			"storage_path", blob.StoragePath, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.afterContentChange(ctx)

	return result, nil
}

// DeleteCircular — удаление циркуляра: сначала блоб, затем метаданные;
// сбой удаления блоба не останавливает удаление метаданных.
func (s *Service) DeleteCircular(ctx context.Context, id string) error {
	const op = "service/circulars/DeleteCircular"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	circ, err := s.storage.CircularByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("circular not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CircularByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := s.removeBlob(ctx, circ.StoragePath); err != nil {
		lg.Warn("blob remove failed, deleting metadata anyway",
			"storage_path", circ.StoragePath, "err", err)
	}

	if err := s.storage.DeleteCircular(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("circular not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeleteCircular", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.afterContentChange(ctx)

	return nil
}
