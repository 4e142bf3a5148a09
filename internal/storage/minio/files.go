package minio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/college-console/internal/storage"
)

// Upload пишет объект под ключом "<prefix>/<epoch-millis>_<name>" и
// возвращает публичную ссылку вместе с ключом для последующего удаления.
//
// Уникальность ключа держится на миллисекундной метке + исходном имени:
// коллизия возможна лишь при одновременной загрузке одноимённых файлов в
// одну миллисекунду и отдельно не отлавливается.
func (s *FileStorage) Upload(ctx context.Context, prefix, name, contentType string, r io.Reader, size int64) (*storage.Blob, error) {
	const op = "storage/minio/Upload"

	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	name = strings.TrimSpace(name)
	if prefix == "" || name == "" || size <= 0 {
		return nil, storage.ErrInvalidArgument
	}

	if s.cfg.Upload.MaxSizeBytes > 0 && size > s.cfg.Upload.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	now := time.Now()
	key := fmt.Sprintf("%s/%d_%s", prefix, now.UnixMilli(), name)

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, r, size, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: put: %w", op, err)
	}

	return &storage.Blob{
		URL:         s.publicURL(key),
		StoragePath: key,
		UploadedAt:  now.UTC(),
	}, nil
}

// Remove удаляет объект по ключу.
// Отсутствующий объект — storage.ErrNotFound: вызывающий решает, считать ли
// это сбоем (метаданные удаляются в любом случае, см. сервисный слой).
func (s *FileStorage) Remove(ctx context.Context, storagePath string) error {
	const op = "storage/minio/Remove"

	key := strings.TrimSpace(storagePath)
	if key == "" {
		return storage.ErrInvalidArgument
	}

	// RemoveObject в S3 молчит про отсутствующие ключи, поэтому сначала Stat.
	if _, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{}); err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: stat: %w", op, err)
	}

	if err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: remove: %w", op, err)
	}

	return nil
}

// publicURL собирает ссылку на скачивание: PublicBaseURL, если задан
// (CDN/реверс-прокси), иначе прямой путь бакета на endpoint.
func (s *FileStorage) publicURL(key string) string {
	if base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/"); base != "" {
		return base + "/" + key
	}

	endpoint := strings.TrimRight(s.cfg.S3.Endpoint, "/")
	return endpoint + "/" + s.cfg.S3.Bucket + "/" + key
}
