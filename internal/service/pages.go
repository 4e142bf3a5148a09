package service

import (
	"context"
	"strings"

	"github.com/pribylovaa/college-console/internal/pager"
)

// PageQuery — параметры табличного экрана.
//
// Особенности:
//   - Page < 1 трактуется как 1;
//   - PageSize == 0 — оставить текущий размер страницы экрана;
//   - Search/Category фильтруют только уже загруженную страницу, а не всю
//     коллекцию: поиск по всем страницам остаётся вне рамок консоли.
type PageQuery struct {
	Page     int
	PageSize int32
	Search   string
	Category string
}

// PageState — состояние экрана, уходящее в ответ транспорта.
type PageState = pager.State

// loadPage приводит пейджер к запрошенному состоянию: при смене размера
// страницы пейджер сбрасывается на первую страницу, иначе пересчитывается
// число страниц и загружается страница q.Page. Переход на страницу, токена
// которой ещё нет, пейджер молча игнорирует — экран остаётся на прежних
// данных.
func loadPage[T any](ctx context.Context, p *pager.Pager[T], q PageQuery, maxSize int32) (pager.State, error) {
	if q.PageSize < 0 || q.PageSize > maxSize {
		return pager.State{}, ErrInvalidArgument
	}

	if q.Page < 1 {
		q.Page = 1
	}

	if q.PageSize > 0 && q.PageSize != p.State().PageSize {
		if err := p.SetPageSize(ctx, q.PageSize); err != nil {
			return pager.State{}, err
		}

		if q.Page == 1 {
			return p.State(), nil
		}
	}

	if err := p.Refresh(ctx); err != nil {
		return pager.State{}, err
	}

	if err := p.GoToPage(ctx, q.Page); err != nil {
		return pager.State{}, err
	}

	return p.State(), nil
}

// filterPage оставляет элементы загруженной страницы, прошедшие предикат.
func filterPage[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}

	return out
}

// matches — фильтр строки таблицы: подстрока без учёта регистра по любому из
// полей поиска + точное совпадение категории (пустые критерии пропускают всё).
func matches(search, category, itemCategory string, fields ...string) bool {
	if category != "" && itemCategory != category {
		return false
	}

	if search == "" {
		return true
	}

	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}

	return false
}
