package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vendora/marketplace-service/internal/usecase"
	productdto "github.com/vendora/marketplace-service/internal/usecase/dto/product"
	vendordto "github.com/vendora/marketplace-service/internal/usecase/dto/vendor"
)

type AdminHandler struct {
	moderationUC usecase.ModerationUsecase
}

func NewAdminHandler(moderationUC usecase.ModerationUsecase) *AdminHandler {
	return &AdminHandler{moderationUC: moderationUC}
}

type moderateVendorRequest struct {
	Status         string `json:"status"`
	IsPublic       *bool  `json:"isPublic"`
	ModerationNote string `json:"moderationNote"`
	AdminID        string `json:"adminId"`
}

func (h *AdminHandler) ModerateVendor(w http.ResponseWriter, r *http.Request) {
	var req moderateVendorRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	err := h.moderationUC.ModerateVendor(r.Context(), &vendordto.ModerateVendorInput{
		VendorProfileID: chi.URLParam(r, "vendorID"),
		Status:          req.Status,
		IsPublic:        req.IsPublic,
		ModerationNote:  req.ModerationNote,
		AdminID:         req.AdminID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setProductStatusRequest struct {
	Status         string `json:"status"`
	ModerationNote string `json:"moderationNote"`
	ActorID        string `json:"actorId"`
	ActorIsAdmin   bool   `json:"actorIsAdmin"`
}

func (h *AdminHandler) SetProductStatus(w http.ResponseWriter, r *http.Request) {
	var req setProductStatusRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.moderationUC.SetProductStatus(r.Context(), &productdto.SetProductStatusInput{
		ProductID:      chi.URLParam(r, "productID"),
		Status:         req.Status,
		ModerationNote: req.ModerationNote,
		ActorID:        req.ActorID,
		ActorIsAdmin:   req.ActorIsAdmin,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(product))
}
