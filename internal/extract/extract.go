// extract вытаскивает из HTML-содержимого объявления заголовок, тизер и
// обложку для карточек списка. Функция чистая и детерминированная: одинаковый
// вход всегда даёт одинаковый результат, побочных эффектов нет.
package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Значения по умолчанию; каждое поле откатывается на своё независимо от других.
const (
	DefaultTitle   = "No Title"
	DefaultExcerpt = "No description available"
	DefaultImage   = "/placeholder.jpg"

	invalidTitle = "Invalid HTML"
)

// Content — лучшая догадка о превью содержимого.
type Content struct {
	Title   string
	Excerpt string
	Image   string
}

// Extract разбирает HTML и возвращает:
//   - Title — текст первого заголовка h1..h6 в порядке документа, с обрезанными пробелами;
//   - Excerpt — текст первого параграфа;
//   - Image — атрибут src первого изображения.
//
// Пустой вход даёт полный набор значений по умолчанию. Не найденное поле
// откатывается на своё значение по умолчанию отдельно от остальных.
// Невосстановимо битая разметка даёт {"Invalid HTML", "", "/placeholder.jpg"};
// на практике парсер восстанавливает почти всё, и эта ветка почти недостижима.
func Extract(raw string) Content {
	if strings.TrimSpace(raw) == "" {
		return Content{
			Title:   DefaultTitle,
			Excerpt: DefaultExcerpt,
			Image:   DefaultImage,
		}
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return Content{
			Title:   invalidTitle,
			Excerpt: "",
			Image:   DefaultImage,
		}
	}

	var f firsts
	walk(doc, &f)

	res := Content{
		Title:   f.title,
		Excerpt: f.excerpt,
		Image:   f.image,
	}
	if res.Title == "" {
		res.Title = DefaultTitle
	}
	if res.Excerpt == "" {
		res.Excerpt = DefaultExcerpt
	}
	if res.Image == "" {
		res.Image = DefaultImage
	}

	return res
}

// firsts хранит содержимое ПЕРВОГО вхождения каждого элемента: пустой
// заголовок в начале документа не даёт права более позднему заголовку
// занять его место — поле просто откатится на значение по умолчанию.
type firsts struct {
	title, excerpt, image        string
	hasTitle, hasExcerpt, hasImg bool
}

// walk обходит дерево в порядке документа и фиксирует первое вхождение
// каждого интересующего элемента. Обход не прерывается досрочно: дерево
// превью маленькое, а ранний выход только усложнил бы код.
func walk(n *html.Node, f *firsts) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if !f.hasTitle {
				f.hasTitle = true
				f.title = strings.TrimSpace(textOf(n))
			}
		case "p":
			if !f.hasExcerpt {
				f.hasExcerpt = true
				f.excerpt = strings.TrimSpace(textOf(n))
			}
		case "img":
			if !f.hasImg {
				f.hasImg = true
				f.image = attr(n, "src")
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, f)
	}
}

// textOf собирает текстовые узлы поддерева.
func textOf(n *html.Node) string {
	var sb strings.Builder

	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)

	return sb.String()
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}

	return ""
}
