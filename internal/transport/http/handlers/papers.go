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

type paperResponse struct {
	ID          string    `json:"id"`
	SubjectName string    `json:"subject_name"`
	Category    string    `json:"category"`
	FileName    string    `json:"file_name"`
	PDFURL      string    `json:"pdf_url"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

type papersPageResponse struct {
	Items []paperResponse `json:"items"`
	pager.State
}

func paperToResponse(p models.QuestionPaper) paperResponse {
	return paperResponse{
		ID:          p.ID,
		SubjectName: p.SubjectName,
		Category:    p.Category,
		FileName:    p.FileName,
		PDFURL:      p.PDFURL,
		StoragePath: p.StoragePath,
		CreatedAt:   p.CreatedAt,
	}
}

// ListPapers — GET /question-papers: табличный экран билетов.
func (h *Handlers) ListPapers(w http.ResponseWriter, r *http.Request) {
	q, err := pageQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.PapersPage(r.Context(), q)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := papersPageResponse{Items: make([]paperResponse, 0, len(page.Items)), State: page.State}
	for _, it := range page.Items {
		out.Items = append(out.Items, paperToResponse(it))
	}

	writeJSON(w, http.StatusOK, out)
}

// UploadPaper — POST /question-papers: multipart-форма
// (subject_name, category, file).
func (h *Handlers) UploadPaper(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	defer file.Close()

	p, err := h.svc.UploadQuestionPaper(r.Context(), service.UploadPaperInput{
		SubjectName: r.FormValue("subject_name"),
		Category:    r.FormValue("category"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
		Size:        header.Size,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, paperToResponse(*p))
}

// DeletePaper — DELETE /question-papers/{id}.
func (h *Handlers) DeletePaper(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	if err := h.svc.DeleteQuestionPaper(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
