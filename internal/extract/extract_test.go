package extract

// Тесты экстрактора превью (extract.go).
//
// Проверяем:
//  - полный откат на значения по умолчанию для пустого входа;
//  - извлечение первого заголовка/параграфа/изображения в порядке документа;
//  - независимый откат каждого отсутствующего поля;
//  - обрезание пробелов вокруг текста;
//  - детерминированность для одинакового входа.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyInput_AllDefaults(t *testing.T) {
	t.Parallel()

	want := Content{
		Title:   "No Title",
		Excerpt: "No description available",
		Image:   "/placeholder.jpg",
	}

	require.Equal(t, want, Extract(""))
	require.Equal(t, want, Extract("   \n\t "))
}

func TestExtract_FirstOfEach_InDocumentOrder(t *testing.T) {
	t.Parallel()

	const in = `
<div>
  <img src="/first.png">
  <h2>  Annual Sports Meet  </h2>
  <p>
     Open to all departments.
  </p>
  <h1>Second heading is ignored</h1>
  <p>Second paragraph is ignored</p>
  <img src="/second.png">
</div>`

	got := Extract(in)
	require.Equal(t, "Annual Sports Meet", got.Title)
	require.Equal(t, "Open to all departments.", got.Excerpt)
	require.Equal(t, "/first.png", got.Image)
}

func TestExtract_MissingFields_FallBackIndependently(t *testing.T) {
	t.Parallel()

	// Только заголовок.
	got := Extract("<h3>Notice</h3>")
	require.Equal(t, "Notice", got.Title)
	require.Equal(t, "No description available", got.Excerpt)
	require.Equal(t, "/placeholder.jpg", got.Image)

	// Только параграф.
	got = Extract("<p>Details inside</p>")
	require.Equal(t, "No Title", got.Title)
	require.Equal(t, "Details inside", got.Excerpt)
	require.Equal(t, "/placeholder.jpg", got.Image)

	// Только изображение.
	got = Extract(`<img src="/cover.jpg">`)
	require.Equal(t, "No Title", got.Title)
	require.Equal(t, "No description available", got.Excerpt)
	require.Equal(t, "/cover.jpg", got.Image)
}

// Пустой первый заголовок не отдаёт место следующему: поле просто
// откатывается на значение по умолчанию.
func TestExtract_EmptyFirstHeading_DoesNotFallThrough(t *testing.T) {
	t.Parallel()

	got := Extract("<h1>   </h1><h2>Real title</h2>")
	require.Equal(t, "No Title", got.Title)
}

func TestExtract_NestedMarkup_CollectsText(t *testing.T) {
	t.Parallel()

	got := Extract(`<h1><span>Mat</span>-<b>Kabbadi</b></h1><p>Venue: <i>main ground</i></p>`)
	require.Equal(t, "Mat-Kabbadi", got.Title)
	require.Equal(t, "Venue: main ground", got.Excerpt)
}

func TestExtract_ImgWithoutSrc_FallsBack(t *testing.T) {
	t.Parallel()

	got := Extract(`<img alt="no source"><h1>T</h1>`)
	require.Equal(t, "/placeholder.jpg", got.Image)
}

func TestExtract_Deterministic(t *testing.T) {
	t.Parallel()

	const in = `<h4>Circular</h4><p>Exam dates</p><img src="/x.png">`
	first := Extract(in)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Extract(in))
	}
}
