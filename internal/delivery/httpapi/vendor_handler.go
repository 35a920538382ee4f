package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/usecase"
	vendordto "github.com/vendora/marketplace-service/internal/usecase/dto/vendor"
)

type VendorHandler struct {
	vendorUC usecase.VendorUsecase
}

func NewVendorHandler(vendorUC usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{vendorUC: vendorUC}
}

type vendorProfileResponse struct {
	ID                  string `json:"id"`
	UserID              string `json:"userId"`
	TenantKey           string `json:"tenantKey"`
	DisplayName         string `json:"displayName"`
	Slug                string `json:"slug"`
	Status              string `json:"status"`
	IsPublic            bool   `json:"isPublic"`
	TotalSales          int64  `json:"totalSales"`
	TotalRevenueCents   int64  `json:"totalRevenueCents"`
	ActiveProductsCount int64  `json:"activeProductsCount"`
}

func vendorProfileToResponse(p *domain.VendorProfile) vendorProfileResponse {
	return vendorProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		TenantKey:           p.TenantKey,
		DisplayName:         p.DisplayName,
		Slug:                p.Slug,
		Status:              string(p.Status),
		IsPublic:            p.IsPublic,
		TotalSales:          p.TotalSales,
		TotalRevenueCents:   p.TotalRevenueCents,
		ActiveProductsCount: p.ActiveProductsCount,
	}
}

type onboardVendorRequest struct {
	UserID      string `json:"userId"`
	TenantKey   string `json:"tenantKey"`
	DisplayName string `json:"displayName"`
	Slug        string `json:"slug"`
	AvatarURL   string `json:"avatarUrl"`
	BannerURL   string `json:"bannerUrl"`
}

func (h *VendorHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardVendorRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.vendorUC.OnboardVendor(r.Context(), &vendordto.OnboardVendorInput{
		UserID:      req.UserID,
		TenantKey:   req.TenantKey,
		DisplayName: req.DisplayName,
		Slug:        req.Slug,
		AvatarURL:   req.AvatarURL,
		BannerURL:   req.BannerURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vendorProfileToResponse(profile))
}

func (h *VendorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.vendorUC.GetVendorProfile(r.Context(), chi.URLParam(r, "vendorID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vendorProfileToResponse(profile))
}

func (h *VendorHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	profile, err := h.vendorUC.GetVendorProfileBySlug(r.Context(),
		chi.URLParam(r, "slug"),
		chi.URLParam(r, "tenantKey"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vendorProfileToResponse(profile))
}

func (h *VendorHandler) RecomputeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.vendorUC.RecomputeStats(r.Context(), chi.URLParam(r, "vendorID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{
		"totalSales":          stats.TotalSales,
		"totalRevenueCents":   stats.TotalRevenueCents,
		"activeProductsCount": stats.ActiveProductsCount,
	})
}
