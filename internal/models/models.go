// Package models содержит доменные сущности консоли контента колледжа.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Buzz — объявление/анонс (коллекция `buzz`).
// Важно:
//   - ID — ObjectID MongoDB, наружу конвертируется в string;
//   - Content — HTML из конструктора писем; заголовок/тизер/обложка
//     для карточек списка извлекаются из него (см. internal/extract);
//   - Date — дата события, задаётся персоналом;
//   - CreatedAt — серверная метка создания, единственный ключ сортировки списков.
type Buzz struct {
	ID        string
	Name      string
	Category  string
	Date      time.Time
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Inquiry — обращение с публичного сайта (коллекция `inquiry`).
// Консоль показывает их только на чтение.
type Inquiry struct {
	ID          string
	FullName    string
	Email       string
	PhoneNumber string
	Comments    string
	CreatedAt   time.Time
}

// QuestionPaper — загруженный экзаменационный билет (коллекция `question-papers`).
// PDFURL/StoragePath — пара «ссылка на скачивание + ключ для удаления» в блоб-хранилище;
// консистентность пары не гарантируется при частичных сбоях (см. DESIGN.md).
type QuestionPaper struct {
	ID          string
	SubjectName string
	Category    string
	FileName    string
	PDFURL      string
	StoragePath string
	CreatedAt   time.Time
}

// ExamCircular — экзаменационный циркуляр (коллекция `exam-circulars`).
type ExamCircular struct {
	ID          string
	Title       string
	FileName    string
	PDFURL      string
	StoragePath string
	CreatedAt   time.Time
}

// EventSection — документ события с фиксированным ключом (коллекция `events`,
// ключи `mat-kabbadi` и `footprints`). Перезаписывается целиком при каждом
// сохранении: последний писатель побеждает.
type EventSection struct {
	Key           string
	Heading       string
	Description   string
	GoogleFormURL string
	FlipbookURL   string
	Timing        []string
	GetInTouch    string
	Venue         string
	GoogleMapURL  string
	UpdatedAt     time.Time
}

// Magazine — единственный электронный журнал (коллекция `magazines`,
// фиксированный ключ документа).
type Magazine struct {
	Name      string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffUser — учётная запись персонала консоли.
type StaffUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListOptions — параметры выборки одной страницы списка.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (config.LimitsConfig.Default);
//   - Cursor == "" -> страница без якоря (первая).
type ListOptions struct {
	Limit  int32
	Cursor string
}

// Page — страница результатов со ссылкой-курсором на продолжение.
// NextCursor — непрозрачный токен последнего элемента страницы;
// пустой, если страница пуста.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// ChangeEvent — событие изменения в хранилище для live-канала.
// Type — insert/update/replace/delete (словарь change stream MongoDB).
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Type       string    `json:"type"`
	Key        string    `json:"key,omitempty"`
	At         time.Time `json:"at"`
}
