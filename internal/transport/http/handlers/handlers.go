// handlers содержит REST-хендлеры консоли поверх сервисного слоя.
// DTO-структуры запросов/ответов объявлены рядом с хендлерами;
// ошибки всегда уходят через apierrors.WriteError в едином формате.
package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/pribylovaa/college-console/internal/service"
)

// multipartMemory — порог буферизации multipart-формы в памяти,
// остальное уходит во временные файлы.
const multipartMemory = 8 << 20

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// Локальные ошибки парсинга транслируются в 400 тем же путём, что и сервисные.
var errBadRequest = service.ErrInvalidArgument

// pageQuery разбирает общие параметры табличных экранов:
// page, page_size, search, category.
func pageQuery(r *http.Request) (service.PageQuery, error) {
	q := service.PageQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return q, errBadRequest
		}
		q.Page = n
	}

	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 1 {
			return q, errBadRequest
		}
		q.PageSize = int32(n)
	}

	return q, nil
}

// formFile разбирает multipart-форму и достаёт файл из поля "file".
func formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, errBadRequest
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, errBadRequest
	}

	return file, header, nil
}
