package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/usecase"
	productdto "github.com/vendora/marketplace-service/internal/usecase/dto/product"
)

type ProductHandler struct {
	productUC usecase.ProductUsecase
}

func NewProductHandler(productUC usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

type productResponse struct {
	ID          string `json:"id"`
	VendorID    string `json:"vendorId"`
	TenantKey   string `json:"tenantKey"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
	PriceCents  int64  `json:"priceCents"`
	Status      string `json:"status"`
	IsActive    bool   `json:"isActive"`
}

func productToResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		TenantKey:   p.TenantKey,
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		PriceCents:  p.PriceCents,
		Status:      string(p.Status),
		IsActive:    p.IsActive,
	}
}

type createProductRequest struct {
	VendorID    string `json:"vendorId"`
	TenantKey   string `json:"tenantKey"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	PriceCents  int64  `json:"priceCents"`
	FileKey     string `json:"fileKey"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.productUC.CreateProduct(r.Context(), &productdto.CreateProductInput{
		VendorID:    req.VendorID,
		TenantKey:   req.TenantKey,
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		PriceCents:  req.PriceCents,
		FileKey:     req.FileKey,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, productToResponse(product))
}

type updateProductRequest struct {
	VendorID    string `json:"vendorId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.productUC.UpdateProduct(r.Context(), &productdto.UpdateProductInput{
		ProductID:   chi.URLParam(r, "productID"),
		VendorID:    req.VendorID,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(product))
}

func (h *ProductHandler) Archive(w http.ResponseWriter, r *http.Request) {
	err := h.productUC.ArchiveProduct(r.Context(),
		chi.URLParam(r, "productID"),
		r.URL.Query().Get("vendorId"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.productUC.GetProductByID(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(product))
}

// ListPublic is the storefront catalog: only products that pass the full
// visibility evaluation for the requesting tenant are returned.
func (h *ProductHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	products, err := h.productUC.ListPublicProducts(r.Context(), chi.URLParam(r, "tenantKey"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ProductHandler) ListVendor(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUC.ListVendorProducts(r.Context(),
		chi.URLParam(r, "vendorID"),
		r.URL.Query().Get("tenantKey"),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ProductHandler) InspectVisibility(w http.ResponseWriter, r *http.Request) {
	view, err := h.productUC.InspectVisibility(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product": productToResponse(view.Product),
		"visible": view.Visible,
		"reasons": view.Reasons,
	})
}

func pagination(r *http.Request) (page, limit int32) {
	page, limit = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 32); err == nil && v > 0 && v <= 100 {
		limit = int32(v)
	}
	return page, limit
}
