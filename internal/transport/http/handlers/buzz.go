package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/pager"
	"github.com/pribylovaa/college-console/internal/service"
	"github.com/pribylovaa/college-console/internal/transport/http/apierrors"
)

type buzzRequest struct {
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

type buzzResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type buzzListItem struct {
	buzzResponse
	// Поля карточки, извлечённые из HTML-содержимого.
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Image   string `json:"image"`
}

type buzzPageResponse struct {
	Items []buzzListItem `json:"items"`
	pager.State
}

func buzzToResponse(b models.Buzz) buzzResponse {
	return buzzResponse{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		Date:      b.Date,
		Content:   b.Content,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ListBuzz — GET /buzz: табличный экран объявлений.
func (h *Handlers) ListBuzz(w http.ResponseWriter, r *http.Request) {
	q, err := pageQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.BuzzPage(r.Context(), q)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := buzzPageResponse{Items: make([]buzzListItem, 0, len(page.Items)), State: page.State}
	for _, it := range page.Items {
		out.Items = append(out.Items, buzzListItem{
			buzzResponse: buzzToResponse(it.Buzz),
			Title:        it.Preview.Title,
			Excerpt:      it.Preview.Excerpt,
			Image:        it.Preview.Image,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// CreateBuzz — POST /buzz.
func (h *Handlers) CreateBuzz(w http.ResponseWriter, r *http.Request) {
	var in buzzRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	b, err := h.svc.CreateBuzz(r.Context(), service.BuzzInput(in))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, buzzToResponse(*b))
}

// UpdateBuzz — PUT /buzz/{id}: полная перезапись.
func (h *Handlers) UpdateBuzz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	var in buzzRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	b, err := h.svc.UpdateBuzz(r.Context(), id, service.BuzzInput(in))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, buzzToResponse(*b))
}

// DeleteBuzz — DELETE /buzz/{id}.
func (h *Handlers) DeleteBuzz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	if err := h.svc.DeleteBuzz(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
