// storage определяет контракты доступа к хранилищам консоли:
// документная БД (коллекции контента) и блоб-хранилище (PDF-файлы).
package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/pribylovaa/college-console/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой курсор пагинации.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrAlreadyExists — конфликт уникальности (например, по email персонала).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — неверные аргументы запроса к хранилищу.
	ErrInvalidArgument = errors.New("invalid argument")
)

// BuzzStorage описывает операции над сущностью models.Buzz.
type BuzzStorage interface {
	// CreateBuzz вставляет новую запись, проставляя серверный CreatedAt.
	CreateBuzz(ctx context.Context, b models.Buzz) (*models.Buzz, error)
	// UpdateBuzz перезаписывает все редактируемые поля записи по id.
	// Если запись не найдена — ErrNotFound.
	UpdateBuzz(ctx context.Context, id string, b models.Buzz) (*models.Buzz, error)
	// DeleteBuzz удаляет запись по id. Если запись не найдена — ErrNotFound.
	DeleteBuzz(ctx context.Context, id string) error
	// ListBuzz возвращает страницу, отсортированную по created_at DESC, _id DESC.
	// При некорректном курсоре — ErrInvalidCursor.
	ListBuzz(ctx context.Context, opts models.ListOptions) (*models.Page[models.Buzz], error)
	// CountBuzz возвращает полный размер коллекции (для расчёта числа страниц).
	CountBuzz(ctx context.Context) (int64, error)
}

// InquiryStorage — операции над обращениями (только чтение).
type InquiryStorage interface {
	ListInquiries(ctx context.Context, opts models.ListOptions) (*models.Page[models.Inquiry], error)
	CountInquiries(ctx context.Context) (int64, error)
}

// QuestionPaperStorage — операции над экзаменационными билетами.
type QuestionPaperStorage interface {
	CreateQuestionPaper(ctx context.Context, p models.QuestionPaper) (*models.QuestionPaper, error)
	DeleteQuestionPaper(ctx context.Context, id string) error
	QuestionPaperByID(ctx context.Context, id string) (*models.QuestionPaper, error)
	ListQuestionPapers(ctx context.Context, opts models.ListOptions) (*models.Page[models.QuestionPaper], error)
	CountQuestionPapers(ctx context.Context) (int64, error)
}

// CircularStorage — операции над экзаменационными циркулярами.
type CircularStorage interface {
	CreateCircular(ctx context.Context, c models.ExamCircular) (*models.ExamCircular, error)
	DeleteCircular(ctx context.Context, id string) error
	CircularByID(ctx context.Context, id string) (*models.ExamCircular, error)
	ListCirculars(ctx context.Context, opts models.ListOptions) (*models.Page[models.ExamCircular], error)
	CountCirculars(ctx context.Context) (int64, error)
}

// EventStorage — документы событий с фиксированными ключами.
type EventStorage interface {
	// EventByKey возвращает документ по ключу. Если документа нет — ErrNotFound.
	EventByKey(ctx context.Context, key string) (*models.EventSection, error)
	// UpsertEvent перезаписывает документ целиком (создаёт при отсутствии).
	UpsertEvent(ctx context.Context, ev models.EventSection) error
}

// MagazineStorage — единственный документ журнала.
type MagazineStorage interface {
	Magazine(ctx context.Context) (*models.Magazine, error)
	UpsertMagazine(ctx context.Context, m models.Magazine) (*models.Magazine, error)
	DeleteMagazine(ctx context.Context) error
}

// StaffStorage — учётные записи персонала.
type StaffStorage interface {
	// StaffByEmail возвращает пользователя по нормализованному email.
	// Если запись не найдена — ErrNotFound.
	StaffByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	// SaveStaff сохраняет нового пользователя; конфликт email — ErrAlreadyExists.
	SaveStaff(ctx context.Context, u *models.StaffUser) error
}

// Watcher — подписка на изменения коллекций контента.
// Возвращённый канал закрывается при отмене подписки или обрыве потока;
// cancel можно вызывать многократно.
type Watcher interface {
	WatchChanges(ctx context.Context) (<-chan models.ChangeEvent, func(), error)
}

// Storage задаёт суммарный контракт документного хранилища консоли.
type Storage interface {
	BuzzStorage
	InquiryStorage
	QuestionPaperStorage
	CircularStorage
	EventStorage
	MagazineStorage
	StaffStorage
	Watcher

	// CollectionCounts возвращает счётчики документов по всем коллекциям
	// контента (плоская карта имя коллекции -> количество).
	CollectionCounts(ctx context.Context) (map[string]int64, error)

	Close(ctx context.Context) error
}

// Blob — результат загрузки файла: публичная ссылка + ключ для удаления.
type Blob struct {
	URL         string
	StoragePath string
	UploadedAt  time.Time
}

// FileStorage описывает операции блоб-хранилища.
type FileStorage interface {
	// Upload пишет объект под ключом "<prefix>/<epoch-millis>_<name>"
	// и возвращает публичную ссылку вместе с ключом.
	Upload(ctx context.Context, prefix, name, contentType string, r io.Reader, size int64) (*Blob, error)
	// Remove удаляет объект по ключу. Отсутствующий объект — ErrNotFound.
	Remove(ctx context.Context, storagePath string) error
}
