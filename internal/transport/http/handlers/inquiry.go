package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/college-console/internal/pager"
	"github.com/pribylovaa/college-console/internal/transport/http/apierrors"
)

type inquiryResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Comments    string    `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

type inquiryPageResponse struct {
	Items []inquiryResponse `json:"items"`
	pager.State
}

// ListInquiries — GET /inquiries: обращения с публичного сайта (только чтение).
func (h *Handlers) ListInquiries(w http.ResponseWriter, r *http.Request) {
	q, err := pageQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.InquiryPage(r.Context(), q)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := inquiryPageResponse{Items: make([]inquiryResponse, 0, len(page.Items)), State: page.State}
	for _, it := range page.Items {
		out.Items = append(out.Items, inquiryResponse{
			ID:          it.ID,
			FullName:    it.FullName,
			Email:       it.Email,
			PhoneNumber: it.PhoneNumber,
			Comments:    it.Comments,
			CreatedAt:   it.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
