package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vendora/marketplace-service/internal/usecase"
	tenantdto "github.com/vendora/marketplace-service/internal/usecase/dto/tenant"
)

type TenantHandler struct {
	tenantUC usecase.TenantUsecase
}

func NewTenantHandler(tenantUC usecase.TenantUsecase) *TenantHandler {
	return &TenantHandler{tenantUC: tenantUC}
}

type tenantResponse struct {
	ID        string `json:"id,omitempty"`
	Key       string `json:"key"`
	Name      string `json:"name,omitempty"`
	Mode      string `json:"mode"`
	Plan      string `json:"plan"`
	Status    string `json:"status"`
	ThemeJSON string `json:"themeJson,omitempty"`
}

type resolveResponse struct {
	Tenant       tenantResponse `json:"tenant"`
	Capabilities any            `json:"capabilities"`
	Virtual      bool           `json:"virtual"`
}

func (h *TenantHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "tenantKey")

	res, err := h.tenantUC.Resolve(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Tenant: tenantResponse{
			ID:        res.Tenant.ID,
			Key:       res.Tenant.Key,
			Name:      res.Tenant.Name,
			Mode:      string(res.Tenant.Mode),
			Plan:      string(res.Tenant.Plan),
			Status:    string(res.Tenant.Status),
			ThemeJSON: res.Tenant.ThemeJSON,
		},
		Capabilities: res.Capabilities,
		Virtual:      res.Virtual,
	})
}

type createTenantRequest struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Mode string `json:"mode"`
	Plan string `json:"plan"`
}

func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tenant, err := h.tenantUC.CreateTenant(r.Context(), &tenantdto.CreateTenantInput{
		Key:  req.Key,
		Name: req.Name,
		Mode: req.Mode,
		Plan: req.Plan,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tenantResponse{
		ID:     tenant.ID,
		Key:    tenant.Key,
		Name:   tenant.Name,
		Mode:   string(tenant.Mode),
		Plan:   string(tenant.Plan),
		Status: string(tenant.Status),
	})
}

type updatePlanRequest struct {
	Plan string `json:"plan"`
}

func (h *TenantHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var req updatePlanRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tenant, err := h.tenantUC.UpdateTenantPlan(r.Context(), &tenantdto.UpdateTenantPlanInput{
		TenantID: chi.URLParam(r, "tenantID"),
		Plan:     req.Plan,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tenantResponse{
		ID:     tenant.ID,
		Key:    tenant.Key,
		Name:   tenant.Name,
		Mode:   string(tenant.Mode),
		Plan:   string(tenant.Plan),
		Status: string(tenant.Status),
	})
}

type updateBrandingRequest struct {
	ThemeJSON string `json:"themeJson"`
}

func (h *TenantHandler) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	var req updateBrandingRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	err := h.tenantUC.UpdateTenantBranding(r.Context(), &tenantdto.UpdateTenantBrandingInput{
		TenantID:  chi.URLParam(r, "tenantID"),
		ThemeJSON: req.ThemeJSON,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type attachDomainRequest struct {
	Hostname string `json:"hostname"`
}

func (h *TenantHandler) AttachDomain(w http.ResponseWriter, r *http.Request) {
	var req attachDomainRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	d, err := h.tenantUC.AttachDomain(r.Context(), &tenantdto.AttachDomainInput{
		TenantID: chi.URLParam(r, "tenantID"),
		Hostname: req.Hostname,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":       d.ID,
		"hostname": d.Hostname,
	})
}

func (h *TenantHandler) DetachDomain(w http.ResponseWriter, r *http.Request) {
	err := h.tenantUC.DetachDomain(r.Context(),
		chi.URLParam(r, "tenantID"),
		chi.URLParam(r, "domainID"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
