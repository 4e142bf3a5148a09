package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/service"
	"github.com/pribylovaa/college-console/internal/transport/http/apierrors"
)

type magazineRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type magazineResponse struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func magazineToResponse(m models.Magazine) magazineResponse {
	return magazineResponse{
		Name:      m.Name,
		URL:       m.URL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GetMagazine — GET /magazine: текущий журнал.
func (h *Handlers) GetMagazine(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Magazine(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, magazineToResponse(*m))
}

// SaveMagazine — PUT /magazine: создание/полная перезапись журнала.
func (h *Handlers) SaveMagazine(w http.ResponseWriter, r *http.Request) {
	var in magazineRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	m, err := h.svc.SaveMagazine(r.Context(), service.MagazineInput(in))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, magazineToResponse(*m))
}

// DeleteMagazine — DELETE /magazine.
func (h *Handlers) DeleteMagazine(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMagazine(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
