// pager реализует постраничную навигацию по курсорам для табличных экранов
// консоли. Хранилище отдаёт страницы «вперёд» по непрозрачному токену
// последнего увиденного элемента; пейджер ведёт учёт токенов по номерам
// страниц, чтобы поддержать переходы по номеру страницы в UI.
//
// Особенности:
//   - состояние одного пейджера (номер страницы, размер, токены, число
//     страниц) — это сериализуемое view-state одного экрана;
//   - все операции сериализованы мьютексом: одновременно выполняется не
//     больше одного запроса, поздний ответ не может перетереть свежий
//     (в исходной версии экранов это была известная гонка);
//   - токен страницы k появляется лениво, при первой загрузке страницы k;
//     смена размера страницы сбрасывает все токены — границы страниц сдвинулись.
package pager

import (
	"context"
	"fmt"
	"sync"
)

// FetchFunc выбирает одну страницу: отдаёт элементы после курсора cursor
// (пустой — без якоря) в количестве до limit и токен последнего элемента.
type FetchFunc[T any] func(ctx context.Context, cursor string, limit int32) (items []T, next string, err error)

// CountFunc возвращает полный размер коллекции без фильтров.
type CountFunc func(ctx context.Context) (int64, error)

// Pager — постраничный доступ к одной коллекции.
// Безопасен для конкурентного использования.
type Pager[T any] struct {
	mu sync.Mutex

	fetch FetchFunc[T]
	count CountFunc

	pageSize    int32
	currentPage int
	totalPages  int
	// cursors[i] — токен конца страницы i+1.
	cursors []string
	items   []T
}

// State — сериализуемый снимок состояния пейджера для транспорта.
type State struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int32 `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
}

// New создаёт пейджер с заданным размером страницы (минимум 1).
func New[T any](fetch FetchFunc[T], count CountFunc, pageSize int32) *Pager[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	return &Pager[T]{
		fetch:       fetch,
		count:       count,
		pageSize:    pageSize,
		currentPage: 1,
		totalPages:  1,
	}
}

// Refresh пересчитывает число страниц по полному счёту коллекции:
// totalPages = ceil(count/pageSize), но не меньше 1.
func (p *Pager[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.refreshLocked(ctx)
}

func (p *Pager[T]) refreshLocked(ctx context.Context) error {
	const op = "pager/Refresh"

	n, err := p.count(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	pages := int((n + int64(p.pageSize) - 1) / int64(p.pageSize))
	if pages < 1 {
		pages = 1
	}
	p.totalPages = pages

	return nil
}

// FetchPage загружает страницу n (нумерация с 1).
//
// Поведение:
//   - n == 1 — запрос без якоря;
//   - n > 1 — нужен токен страницы n-1; если его нет (страницу n-1 ещё ни
//     разу не загружали), вызов молча не делает ничего: элементы и токены
//     остаются нетронутыми;
//   - при успехе элементы заменяются результатом, токен страницы n
//     записывается по последнему элементу (для непустой страницы), более
//     ранние токены не трогаются;
//   - при ошибке элементы остаются прежними, ошибка уходит вызывающему,
//     повторов пейджер не делает.
func (p *Pager[T]) FetchPage(ctx context.Context, n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.fetchPageLocked(ctx, n)
}

func (p *Pager[T]) fetchPageLocked(ctx context.Context, n int) error {
	const op = "pager/FetchPage"

	if n < 1 {
		return fmt.Errorf("%s: page %d out of range", op, n)
	}

	cursor := ""
	if n > 1 {
		if n-2 >= len(p.cursors) || p.cursors[n-2] == "" {
			// Страницу n-1 ещё не загружали — якоря нет, тихий no-op.
			return nil
		}
		cursor = p.cursors[n-2]
	}

	items, next, err := p.fetch(ctx, cursor, p.pageSize)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.items = items

	if len(items) > 0 {
		for len(p.cursors) < n {
			p.cursors = append(p.cursors, "")
		}
		p.cursors[n-1] = next
	}

	return nil
}

// GoToPage переводит пейджер на страницу n и загружает её.
// Допустимый диапазон [1, totalPages] обеспечивает вызывающий (UI гасит
// кнопки за пределами диапазона); сам переход n просто фиксирует.
func (p *Pager[T]) GoToPage(ctx context.Context, n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.currentPage = n

	return p.fetchPageLocked(ctx, n)
}

// SetPageSize меняет размер страницы: текущая страница сбрасывается на 1,
// все токены очищаются (границы страниц при новом размере сдвинулись),
// число страниц пересчитывается и первая страница загружается заново.
func (p *Pager[T]) SetPageSize(ctx context.Context, size int32) error {
	const op = "pager/SetPageSize"

	if size < 1 {
		return fmt.Errorf("%s: page size %d out of range", op, size)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.pageSize = size
	p.currentPage = 1
	p.cursors = nil

	if err := p.refreshLocked(ctx); err != nil {
		return err
	}

	return p.fetchPageLocked(ctx, 1)
}

// Items возвращает копию последней успешно загруженной страницы.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]T, len(p.items))
	copy(out, p.items)

	return out
}

// State возвращает снимок состояния для сериализации в ответ транспорта.
func (p *Pager[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return State{
		CurrentPage: p.currentPage,
		PageSize:    p.pageSize,
		TotalPages:  p.totalPages,
	}
}
