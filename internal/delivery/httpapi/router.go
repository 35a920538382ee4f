package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Tenant  *TenantHandler
	Vendor  *VendorHandler
	Product *ProductHandler
	Order   *OrderHandler
	Payout  *PayoutHandler
	Admin   *AdminHandler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tenants", func(r chi.Router) {
			r.Post("/", h.Tenant.Create)
			r.Get("/{tenantKey}/resolve", h.Tenant.Resolve)
			r.Patch("/{tenantID}/plan", h.Tenant.UpdatePlan)
			r.Patch("/{tenantID}/branding", h.Tenant.UpdateBranding)
			r.Post("/{tenantID}/domains", h.Tenant.AttachDomain)
			r.Delete("/{tenantID}/domains/{domainID}", h.Tenant.DetachDomain)
			r.Get("/{tenantKey}/products", h.Product.ListPublic)
			r.Get("/{tenantKey}/vendors/{slug}", h.Vendor.GetBySlug)
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Post("/", h.Vendor.Onboard)
			r.Get("/{vendorID}", h.Vendor.GetByID)
			r.Post("/{vendorID}/stats/recompute", h.Vendor.RecomputeStats)
			r.Get("/{vendorID}/products", h.Product.ListVendor)
			r.Get("/{vendorID}/orders", h.Order.ListVendor)
			r.Get("/{vendorID}/balances", h.Payout.Balances)
			r.Get("/{vendorID}/payouts", h.Payout.ListVendor)
			r.Post("/{vendorID}/payouts", h.Payout.Request)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.Product.Create)
			r.Get("/{productID}", h.Product.GetByID)
			r.Patch("/{productID}", h.Product.Update)
			r.Delete("/{productID}", h.Product.Archive)
			r.Patch("/{productID}/status", h.Admin.SetProductStatus)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.Order.Create)
			r.Get("/{orderID}", h.Order.GetByID)
			r.Post("/{orderID}/paid", h.Order.MarkPaid)
			r.Post("/{orderID}/cancel", h.Order.Cancel)
		})

		r.Get("/buyers/{buyerID}/orders", h.Order.ListBuyer)

		r.Route("/admin", func(r chi.Router) {
			r.Patch("/vendors/{vendorID}/moderation", h.Admin.ModerateVendor)
			r.Get("/products/{productID}/visibility", h.Product.InspectVisibility)
			r.Post("/payouts/{payoutID}/paid", h.Payout.MarkPaid)
		})
	})

	return r
}
