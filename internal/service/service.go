// service содержит бизнес-логику консоли: табличные экраны коллекций
// (пейджер + фильтр по загруженной странице), загрузку PDF в блоб-хранилище,
// документы с фиксированными ключами, счётчики дашборда и аутентификацию
// персонала.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин — состояние
//     экранов живёт в пейджерах, сериализованных собственными мьютексами.
//   - Ошибки возвращаются сентинелами и далее маппятся транспортом
//     на HTTP-коды (см. комментарии к переменным ошибок ниже).
package service

import (
	"context"
	"errors"

	"github.com/pribylovaa/college-console/internal/cache"
	"github.com/pribylovaa/college-console/internal/config"
	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/pager"
	"github.com/pribylovaa/college-console/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument — неверные входные параметры запроса. Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь
	// не найден. Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — access-токен некорректен по формату/подписи.
	// Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrConflict — конфликт уникальности (email персонала). Транспорт: HTTP 409.
	ErrConflict = errors.New("conflict")

	// ErrFileTooLarge — файл превышает лимит загрузки. Транспорт: HTTP 413.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст/и т.д.). Транспорт: HTTP 500.
	ErrInternal = errors.New("internal")
)

// Service описывает бизнес-логику консоли.
type Service struct {
	storage storage.Storage
	files   storage.FileStorage
	cfg     config.Config

	// counts — опциональный кэш счётчиков дашборда; nil — кэш выключен.
	counts cache.CountsCache

	buzzPager     *pager.Pager[models.Buzz]
	inquiryPager  *pager.Pager[models.Inquiry]
	paperPager    *pager.Pager[models.QuestionPaper]
	circularPager *pager.Pager[models.ExamCircular]
}

// New создает новый экземпляр Service и поднимает пейджеры табличных экранов
// поверх списочных операций хранилища.
func New(st storage.Storage, files storage.FileStorage, cfg config.Config) *Service {
	s := &Service{
		storage: st,
		files:   files,
		cfg:     cfg,
	}

	size := cfg.Limits.Default

	s.buzzPager = pager.New(
		func(ctx context.Context, cursor string, limit int32) ([]models.Buzz, string, error) {
			page, err := st.ListBuzz(ctx, models.ListOptions{Limit: limit, Cursor: cursor})
			if err != nil {
				return nil, "", err
			}
			return page.Items, page.NextCursor, nil
		},
		st.CountBuzz,
		size,
	)

	s.inquiryPager = pager.New(
		func(ctx context.Context, cursor string, limit int32) ([]models.Inquiry, string, error) {
			page, err := st.ListInquiries(ctx, models.ListOptions{Limit: limit, Cursor: cursor})
			if err != nil {
				return nil, "", err
			}
			return page.Items, page.NextCursor, nil
		},
		st.CountInquiries,
		size,
	)

	s.paperPager = pager.New(
		func(ctx context.Context, cursor string, limit int32) ([]models.QuestionPaper, string, error) {
			page, err := st.ListQuestionPapers(ctx, models.ListOptions{Limit: limit, Cursor: cursor})
			if err != nil {
				return nil, "", err
			}
			return page.Items, page.NextCursor, nil
		},
		st.CountQuestionPapers,
		size,
	)

	s.circularPager = pager.New(
		func(ctx context.Context, cursor string, limit int32) ([]models.ExamCircular, string, error) {
			page, err := st.ListCirculars(ctx, models.ListOptions{Limit: limit, Cursor: cursor})
			if err != nil {
				return nil, "", err
			}
			return page.Items, page.NextCursor, nil
		},
		st.CountCirculars,
		size,
	)

	return s
}

// SetCountsCache подключает кэш счётчиков дашборда.
// Вызывается один раз на старте до обслуживания запросов.
func (s *Service) SetCountsCache(c cache.CountsCache) {
	s.counts = c
}
