package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/service"
	"github.com/pribylovaa/college-console/internal/transport/http/apierrors"
)

type eventRequest struct {
	Heading       string   `json:"heading"`
	Description   string   `json:"description"`
	GoogleFormURL string   `json:"google_form_url"`
	FlipbookURL   string   `json:"flipbook_url"`
	Timing        []string `json:"timing,omitempty"`
	GetInTouch    string   `json:"get_in_touch,omitempty"`
	Venue         string   `json:"venue,omitempty"`
	GoogleMapURL  string   `json:"google_map_url,omitempty"`
}

type eventResponse struct {
	Key string `json:"key"`
	eventRequest
	UpdatedAt time.Time `json:"updated_at"`
}

func eventToResponse(ev models.EventSection) eventResponse {
	return eventResponse{
		Key: ev.Key,
		eventRequest: eventRequest{
			Heading:       ev.Heading,
			Description:   ev.Description,
			GoogleFormURL: ev.GoogleFormURL,
			FlipbookURL:   ev.FlipbookURL,
			Timing:        ev.Timing,
			GetInTouch:    ev.GetInTouch,
			Venue:         ev.Venue,
			GoogleMapURL:  ev.GoogleMapURL,
		},
		UpdatedAt: ev.UpdatedAt,
	}
}

// GetEvent — GET /events/{key}: документ события по фиксированному ключу.
func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	ev, err := h.svc.EventByKey(r.Context(), key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(*ev))
}

// SaveEvent — PUT /events/{key}: полная перезапись документа события.
func (h *Handlers) SaveEvent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var in eventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errBadRequest)
		return
	}

	ev, err := h.svc.SaveEvent(r.Context(), key, service.EventInput(in))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(*ev))
}
