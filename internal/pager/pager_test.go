package pager

// Тесты пейджера (pager.go).
//
// Проверяем:
//  - первая страница не требует сохранённого токена;
//  - запрос страницы n>1 до загрузки страницы n-1 — тихий no-op;
//  - расчёт числа страниц: ceil(count/pageSize), минимум 1;
//  - последовательный обход 25 элементов страницами по 10: 10/10/5;
//  - смена размера страницы сбрасывает токены и текущую страницу;
//  - идемпотентность повторной загрузки той же страницы без записей между;
//  - ошибка выборки не трогает загруженные элементы.
//
// Хранилище моделируется срезом в памяти с keyset-курсором по индексу —
// ровно так же ведёт себя сортировка created_at DESC в реальной БД.

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// newBackend — выборка и счёт поверх среза items (уже в нужном порядке).
// Курсор — строковый индекс последнего отданного элемента.
func newBackend(items []string) (FetchFunc[string], CountFunc) {
	fetch := func(_ context.Context, cursor string, limit int32) ([]string, string, error) {
		start := 0
		if cursor != "" {
			i, err := strconv.Atoi(cursor)
			if err != nil {
				return nil, "", errors.New("bad cursor")
			}
			start = i + 1
		}

		if start >= len(items) {
			return nil, "", nil
		}

		end := start + int(limit)
		if end > len(items) {
			end = len(items)
		}

		page := append([]string(nil), items[start:end]...)
		return page, strconv.Itoa(end - 1), nil
	}

	count := func(_ context.Context) (int64, error) {
		return int64(len(items)), nil
	}

	return fetch, count
}

func genItems(n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("item-%02d", i))
	}
	return out
}

func TestPager_FirstPage_NoCursorNeeded(t *testing.T) {
	t.Parallel()

	fetch, count := newBackend(genItems(25))
	p := New(fetch, count, 10)

	require.NoError(t, p.FetchPage(context.Background(), 1))
	require.Equal(t, genItems(25)[:10], p.Items())
}

func TestPager_PageAhead_WithoutPriorFetch_IsNoop(t *testing.T) {
	t.Parallel()

	fetch, count := newBackend(genItems(25))
	p := New(fetch, count, 10)

	// Страница 2 без загрузки страницы 1: ни элементов, ни токенов.
	require.NoError(t, p.FetchPage(context.Background(), 2))
	require.Empty(t, p.Items())

	// После загрузки страницы 1 — страница 2 доступна.
	require.NoError(t, p.FetchPage(context.Background(), 1))
	require.NoError(t, p.FetchPage(context.Background(), 2))
	require.Equal(t, genItems(25)[10:20], p.Items())
}

func TestPager_Refresh_TotalPages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cases := []struct {
		count    int
		pageSize int32
		want     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}

	for _, tc := range cases {
		fetch, count := newBackend(genItems(tc.count))
		p := New(fetch, count, tc.pageSize)
		require.NoError(t, p.Refresh(ctx))
		require.Equal(t, tc.want, p.State().TotalPages, "count=%d size=%d", tc.count, tc.pageSize)
	}
}

func TestPager_WalkThreePages_25Items(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	all := genItems(25)
	fetch, count := newBackend(all)
	p := New(fetch, count, 10)

	require.NoError(t, p.Refresh(ctx))
	require.Equal(t, 3, p.State().TotalPages)

	require.NoError(t, p.GoToPage(ctx, 1))
	require.Equal(t, all[0:10], p.Items())

	require.NoError(t, p.GoToPage(ctx, 2))
	require.Equal(t, all[10:20], p.Items())

	require.NoError(t, p.GoToPage(ctx, 3))
	require.Equal(t, all[20:25], p.Items())
	require.Equal(t, 3, p.State().CurrentPage)
}

func TestPager_SetPageSize_ResetsCursorsAndPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	all := genItems(25)
	fetch, count := newBackend(all)
	p := New(fetch, count, 10)

	require.NoError(t, p.FetchPage(ctx, 1))
	require.NoError(t, p.FetchPage(ctx, 2))

	require.NoError(t, p.SetPageSize(ctx, 5))

	st := p.State()
	require.Equal(t, 1, st.CurrentPage)
	require.Equal(t, int32(5), st.PageSize)
	require.Equal(t, 5, st.TotalPages)
	require.Equal(t, all[0:5], p.Items())

	// Токены старых границ сброшены: страница 3 недостижима, пока не
	// загружена страница 2 с новым размером.
	require.NoError(t, p.FetchPage(ctx, 3))
	require.Equal(t, all[0:5], p.Items())

	require.NoError(t, p.FetchPage(ctx, 2))
	require.Equal(t, all[5:10], p.Items())
}

func TestPager_RepeatFetch_SamePage_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fetch, count := newBackend(genItems(25))
	p := New(fetch, count, 10)

	require.NoError(t, p.FetchPage(ctx, 1))
	require.NoError(t, p.FetchPage(ctx, 2))
	first := p.Items()

	require.NoError(t, p.FetchPage(ctx, 2))
	require.Equal(t, first, p.Items())
}

func TestPager_FetchError_LeavesItemsUntouched(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	all := genItems(10)
	okFetch, count := newBackend(all)

	fail := false
	fetch := func(ctx context.Context, cursor string, limit int32) ([]string, string, error) {
		if fail {
			return nil, "", errors.New("store unavailable")
		}
		return okFetch(ctx, cursor, limit)
	}

	p := New(fetch, count, 10)
	require.NoError(t, p.FetchPage(ctx, 1))
	require.Equal(t, all, p.Items())

	fail = true
	require.Error(t, p.FetchPage(ctx, 1))
	require.Equal(t, all, p.Items())
}

func TestPager_InvalidArguments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fetch, count := newBackend(genItems(5))
	p := New(fetch, count, 10)

	require.Error(t, p.FetchPage(ctx, 0))
	require.Error(t, p.SetPageSize(ctx, 0))
}
