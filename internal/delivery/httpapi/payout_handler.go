package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vendora/marketplace-service/internal/domain"
	payoutdto "github.com/vendora/marketplace-service/internal/usecase/dto/payout"
	payoutusecase "github.com/vendora/marketplace-service/internal/usecase/payout"
)

type PayoutHandler struct {
	payoutUC payoutusecase.PayoutUsecase
}

func NewPayoutHandler(payoutUC payoutusecase.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{payoutUC: payoutUC}
}

type payoutResponse struct {
	ID          string `json:"id"`
	VendorID    string `json:"vendorId"`
	AmountCents int64  `json:"amountCents"`
	Status      string `json:"status"`
	Reference   string `json:"reference"`
}

func payoutToResponse(p *domain.Payout) payoutResponse {
	return payoutResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		AmountCents: p.AmountCents,
		Status:      string(p.Status),
		Reference:   p.Reference,
	}
}

func (h *PayoutHandler) Balances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.payoutUC.ComputeBalances(r.Context(), chi.URLParam(r, "vendorID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{
		"grossCents":            balances.GrossCents,
		"vendorEarningsCents":   balances.VendorEarningsCents,
		"paidOutCents":          balances.PaidOutCents,
		"pendingRequestedCents": balances.PendingRequestedCents,
		"availableCents":        balances.AvailableCents,
	})
}

type requestPayoutRequest struct {
	AmountCents int64 `json:"amountCents"`
}

func (h *PayoutHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req requestPayoutRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	payout, err := h.payoutUC.RequestPayout(r.Context(), &payoutdto.RequestPayoutInput{
		VendorID:    chi.URLParam(r, "vendorID"),
		AmountCents: req.AmountCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payoutToResponse(payout))
}

func (h *PayoutHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	payout, err := h.payoutUC.MarkPayoutPaid(r.Context(), chi.URLParam(r, "payoutID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payoutToResponse(payout))
}

func (h *PayoutHandler) ListVendor(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	payouts, err := h.payoutUC.GetVendorPayouts(r.Context(), chi.URLParam(r, "vendorID"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]payoutResponse, 0, len(payouts))
	for _, p := range payouts {
		out = append(out, payoutToResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}
