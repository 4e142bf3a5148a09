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

// Префиксы ключей блоб-хранилища по типам документов.
const (
	paperPrefix    = "question-bank"
	circularPrefix = "exam-circulars"
)

// UploadPaperInput — загрузка экзаменационного билета: метаданные + PDF.
type UploadPaperInput struct {
	SubjectName string
	Category    string
	FileName    string
	ContentType string
	File        io.Reader
	Size        int64
}

// PapersPageResult — страница билетов после фильтра.
type PapersPageResult struct {
	Items []models.QuestionPaper
	State PageState
}

// PapersPage — табличный экран экзаменационных билетов.
func (s *Service) PapersPage(ctx context.Context, q PageQuery) (*PapersPageResult, error) {
	const op = "service/papers/PapersPage"

	state, err := loadPage(ctx, s.paperPager, q, s.cfg.Limits.Max)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		log.From(ctx).Error("papers page load failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	items := filterPage(s.paperPager.Items(), func(p models.QuestionPaper) bool {
		return matches(q.Search, q.Category, p.Category, p.SubjectName, p.FileName)
	})

	return &PapersPageResult{Items: items, State: PageState(state)}, nil
}

// UploadQuestionPaper — двухшаговая загрузка билета: сначала PDF в блоб-
// хранилище, затем метаданные со ссылкой в БД. Шаги не атомарны: при сбое
// вставки метаданных объект остаётся в хранилище без ссылок (осиротевший
// блоб логируется, компенсации нет).
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустые обязательные поля;
//   - ErrFileTooLarge — файл больше лимита;
//   - ErrInternal — ошибка блоб-хранилища или БД.
func (s *Service) UploadQuestionPaper(ctx context.Context, in UploadPaperInput) (*models.QuestionPaper, error) {
	const op = "service/papers/UploadQuestionPaper"

	lg := log.From(ctx).With("op", op, "file_name", in.FileName)

	in.SubjectName = strings.TrimSpace(in.SubjectName)
	in.Category = strings.TrimSpace(in.Category)
	in.FileName = strings.TrimSpace(in.FileName)

	if in.SubjectName == "" || in.Category == "" || in.FileName == "" || in.File == nil {
		lg.Warn("invalid argument: missing required fields")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Size > s.cfg.Upload.MaxSizeBytes {
		lg.Warn("file too large", "size", in.Size)
		return nil, fmt.Errorf("%s: %w", op, ErrFileTooLarge)
	}

	blob, err := s.files.Upload(ctx, paperPrefix, in.FileName, in.ContentType, in.File, in.Size)
	if err != nil {
		lg.Error("blob upload failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	result, err := s.storage.CreateQuestionPaper(ctx, models.QuestionPaper{
		SubjectName: in.SubjectName,
		Category:    in.Category,
		FileName:    in.FileName,
		PDFURL:      blob.URL,
		StoragePath: blob.StoragePath,
	})
	if err != nil {
		// Блоб уже лежит в хранилище, метаданных на него нет.
		lg.Error("metadata insert failed, blob orphaned",
			"storage_path", blob.StoragePath, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.afterContentChange(ctx)

	return result, nil
}

// DeleteQuestionPaper — удаление билета: сначала блоб, затем метаданные.
// Сбой удаления блоба не останавливает удаление метаданных — строка уходит
// из консоли, осиротевший объект логируется.
//
// Поведение/ошибки:
//   - ErrNotFound — метаданные не найдены;
//   - ErrInternal — ошибка удаления метаданных.
func (s *Service) DeleteQuestionPaper(ctx context.Context, id string) error {
	const op = "service/papers/DeleteQuestionPaper"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	paper, err := s.storage.QuestionPaperByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("question paper not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on QuestionPaperByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := s.removeBlob(ctx, paper.StoragePath); err != nil {
		lg.Warn("blob remove failed, deleting metadata anyway",
			"storage_path", paper.StoragePath, "err", err)
	}

	if err := s.storage.DeleteQuestionPaper(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("question paper not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeleteQuestionPaper", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.afterContentChange(ctx)

	return nil
}

// removeBlob удаляет объект по ключу; отсутствие объекта не считается ошибкой.
func (s *Service) removeBlob(ctx context.Context, storagePath string) error {
	if storagePath == "" {
		return nil
	}

	if err := s.files.Remove(ctx, storagePath); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	return nil
}
