package handlers

import (
	"net/http"

	"github.com/pribylovaa/college-console/internal/transport/http/apierrors"
)

// DashboardCounts — GET /dashboard/counts: плоская карта
// имя коллекции -> число документов.
func (h *Handlers) DashboardCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.DashboardCounts(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}
