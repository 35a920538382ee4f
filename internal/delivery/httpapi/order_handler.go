package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vendora/marketplace-service/internal/domain"
	orderdto "github.com/vendora/marketplace-service/internal/usecase/dto/order"
	orderusecase "github.com/vendora/marketplace-service/internal/usecase/order"
)

type OrderHandler struct {
	orderUC orderusecase.OrderUsecase
}

func NewOrderHandler(orderUC orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

type createOrderRequest struct {
	BuyerID     string `json:"buyerId"`
	ProductID   string `json:"productId"`
	TenantKey   string `json:"tenantKey"`
	AmountCents int64  `json:"amountCents"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.orderUC.CreateOrder(r.Context(), &orderdto.CreateOrderInput{
		BuyerID:     req.BuyerID,
		ProductID:   req.ProductID,
		TenantKey:   req.TenantKey,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.MarkOrderPaid(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.orderUC.CancelOrder(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.GetOrderByID(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListVendor(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filters := domain.OrderFilters{
		Status:    domain.OrderStatus(r.URL.Query().Get("status")),
		TenantKey: r.URL.Query().Get("tenantKey"),
	}

	orders, total, err := h.orderUC.GetVendorOrders(r.Context(), chi.URLParam(r, "vendorID"), filters, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"total":  total,
	})
}

func (h *OrderHandler) ListBuyer(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	orders, err := h.orderUC.GetBuyerOrders(r.Context(), chi.URLParam(r, "buyerID"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
