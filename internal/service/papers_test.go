package service

// Тесты двухшаговых операций с билетами (internal/service/papers.go):
// загрузка PDF в блоб-хранилище + метаданные в БД и удаление в обратном
// порядке. Особое внимание — частичным сбоям: осиротевший блоб при сбое
// вставки метаданных и удаление метаданных при сбое удаления блоба.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

func paperInput() UploadPaperInput {
	return UploadPaperInput{
		SubjectName: "Mathematics",
		Category:    "BSc",
		FileName:    "maths-2026.pdf",
		ContentType: "application/pdf",
		File:        strings.NewReader("%PDF-1.7"),
		Size:        8,
	}
}

func TestService_UploadQuestionPaper_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	for _, in := range []UploadPaperInput{
		func() UploadPaperInput { in := paperInput(); in.SubjectName = "  "; return in }(),
		func() UploadPaperInput { in := paperInput(); in.Category = ""; return in }(),
		func() UploadPaperInput { in := paperInput(); in.FileName = ""; return in }(),
		func() UploadPaperInput { in := paperInput(); in.File = nil; return in }(),
	} {
		_, err := s.UploadQuestionPaper(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestService_UploadQuestionPaper_TooLarge(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := paperInput()
	in.Size = 2 << 20 // лимит в тестовой конфигурации — 1 MiB.

	_, err := s.UploadQuestionPaper(context.Background(), in)
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestService_UploadQuestionPaper_OK(t *testing.T) {
	s, ms, mf, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	blob := &storage.Blob{
		URL:         "http://minio.local/college-console/question-bank/1780000000000_maths-2026.pdf",
		StoragePath: "question-bank/1780000000000_maths-2026.pdf",
	}

	mf.EXPECT().
		Upload(gomock.Any(), "question-bank", "maths-2026.pdf", "application/pdf", gomock.Any(), int64(8)).
		Return(blob, nil)

	ms.EXPECT().
		CreateQuestionPaper(gomock.Any(), models.QuestionPaper{
			SubjectName: "Mathematics",
			Category:    "BSc",
			FileName:    "maths-2026.pdf",
			PDFURL:      blob.URL,
			StoragePath: blob.StoragePath,
		}).
		DoAndReturn(func(_ context.Context, p models.QuestionPaper) (*models.QuestionPaper, error) {
			p.ID = "68b1e2c4a0f1b2c3d4e5f777"
			return &p, nil
		})

	got, err := s.UploadQuestionPaper(context.Background(), paperInput())
	require.NoError(t, err)
	require.Equal(t, blob.URL, got.PDFURL)
	require.Equal(t, blob.StoragePath, got.StoragePath)
}

// Сбой вставки метаданных после успешной загрузки: блоб остаётся без ссылок,
// наружу уходит ErrInternal.
func TestService_UploadQuestionPaper_MetadataFailureOrphansBlob(t *testing.T) {
	s, ms, mf, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mf.EXPECT().
		Upload(gomock.Any(), "question-bank", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&storage.Blob{URL: "u", StoragePath: "question-bank/1_x.pdf"}, nil)
	ms.EXPECT().
		CreateQuestionPaper(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("write conflict"))

	_, err := s.UploadQuestionPaper(context.Background(), paperInput())
	require.ErrorIs(t, err, ErrInternal)
}

// Сбой удаления блоба не останавливает удаление метаданных.
func TestService_DeleteQuestionPaper_BlobFailureStillDeletesMetadata(t *testing.T) {
	s, ms, mf, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	paper := &models.QuestionPaper{
		ID:          "68b1e2c4a0f1b2c3d4e5f777",
		StoragePath: "question-bank/1_x.pdf",
	}

	ms.EXPECT().QuestionPaperByID(gomock.Any(), paper.ID).Return(paper, nil)
	mf.EXPECT().Remove(gomock.Any(), paper.StoragePath).Return(errors.New("s3 unavailable"))
	ms.EXPECT().DeleteQuestionPaper(gomock.Any(), paper.ID).Return(nil)

	require.NoError(t, s.DeleteQuestionPaper(context.Background(), paper.ID))
}

// Отсутствие объекта в блоб-хранилище — не ошибка удаления.
func TestService_DeleteQuestionPaper_BlobMissingIsFine(t *testing.T) {
	s, ms, mf, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	paper := &models.QuestionPaper{ID: "id-1", StoragePath: "question-bank/2_y.pdf"}

	ms.EXPECT().QuestionPaperByID(gomock.Any(), paper.ID).Return(paper, nil)
	mf.EXPECT().Remove(gomock.Any(), paper.StoragePath).Return(storage.ErrNotFound)
	ms.EXPECT().DeleteQuestionPaper(gomock.Any(), paper.ID).Return(nil)

	require.NoError(t, s.DeleteQuestionPaper(context.Background(), paper.ID))
}

func TestService_DeleteQuestionPaper_NotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().QuestionPaperByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	require.ErrorIs(t, s.DeleteQuestionPaper(context.Background(), "missing"), ErrNotFound)
}
