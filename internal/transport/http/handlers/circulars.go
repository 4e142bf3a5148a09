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

type circularResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	FileName    string    `json:"file_name"`
	PDFURL      string    `json:"pdf_url"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

type circularsPageResponse struct {
	Items []circularResponse `json:"items"`
	pager.State
}

func circularToResponse(c models.ExamCircular) circularResponse {
	return circularResponse{
		ID:          c.ID,
		Title:       c.Title,
		FileName:    c.FileName,
		PDFURL:      c.PDFURL,
		StoragePath: c.StoragePath,
		CreatedAt:   c.CreatedAt,
	}
}

// ListCirculars — GET /exam-circulars: табличный экран циркуляров.
func (h *Handlers) ListCirculars(w http.ResponseWriter, r *http.Request) {
	q, err := pageQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.CircularsPage(r.Context(), q)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := circularsPageResponse{Items: make([]circularResponse, 0, len(page.Items)), State: page.State}
	for _, it := range page.Items {
		out.Items = append(out.Items, circularToResponse(it))
	}

	writeJSON(w, http.StatusOK, out)
}

// UploadCircular — POST /exam-circulars: multipart-форма (title, file).
func (h *Handlers) UploadCircular(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	defer file.Close()

	c, err := h.svc.UploadCircular(r.Context(), service.UploadCircularInput{
		Title:       r.FormValue("title"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
		Size:        header.Size,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, circularToResponse(*c))
}

// DeleteCircular — DELETE /exam-circulars/{id}.
func (h *Handlers) DeleteCircular(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	if err := h.svc.DeleteCircular(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
