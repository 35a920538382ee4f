package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics holds the business metrics for orders, payouts,
// moderation and visibility decisions.
type MarketplaceMetrics struct {
	OrdersPaidTotal            prometheus.CounterVec
	OrdersPaidAmountCents      prometheus.CounterVec
	OrdersCanceledTotal        prometheus.CounterVec
	PlatformFeeCentsTotal      prometheus.CounterVec
	VendorEarningsCentsTotal   prometheus.CounterVec

	PayoutsRequestedTotal       prometheus.CounterVec
	PayoutsRequestedAmountCents prometheus.CounterVec
	PayoutsPaidTotal            prometheus.CounterVec
	PayoutsPaidAmountCents      prometheus.CounterVec
	PayoutsRejectedTotal        prometheus.CounterVec

	ModerationTransitionsTotal prometheus.CounterVec
	VisibilityDenialsTotal     prometheus.CounterVec

	BalanceComputeDuration prometheus.HistogramVec
}

func NewMarketplaceMetrics() *MarketplaceMetrics {
	return &MarketplaceMetrics{
		OrdersPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_paid_total",
				Help: "Paid orders",
			},
			[]string{"tenant_key"},
		),
		OrdersPaidAmountCents: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_paid_amount_cents_total",
				Help: "Gross amount of paid orders in minor units",
			},
			[]string{"tenant_key"},
		),
		OrdersCanceledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_canceled_total",
				Help: "Canceled orders",
			},
			[]string{"tenant_key"},
		),
		PlatformFeeCentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_fee_cents_total",
				Help: "Platform share of paid orders in minor units",
			},
			[]string{"tenant_key"},
		),
		VendorEarningsCentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendor_earnings_cents_total",
				Help: "Vendor share of paid orders in minor units",
			},
			[]string{"tenant_key"},
		),

		PayoutsRequestedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_requested_total",
				Help: "Payout requests accepted",
			},
			[]string{"vendor_id"},
		),
		PayoutsRequestedAmountCents: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_requested_amount_cents_total",
				Help: "Requested payout amount in minor units",
			},
			[]string{"vendor_id"},
		),
		PayoutsPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_paid_total",
				Help: "Payouts marked paid",
			},
			[]string{"vendor_id"},
		),
		PayoutsPaidAmountCents: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_paid_amount_cents_total",
				Help: "Paid-out amount in minor units",
			},
			[]string{"vendor_id"},
		),
		PayoutsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_rejected_total",
				Help: "Rejected payout requests",
			},
			[]string{"reason"},
		),

		ModerationTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_transitions_total",
				Help: "Moderation status transitions",
			},
			[]string{"entity", "status"},
		),
		VisibilityDenialsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visibility_denials_total",
				Help: "Products filtered from public listings, by reason",
			},
			[]string{"tenant_key", "reason"},
		),

		BalanceComputeDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vendor_balance_compute_seconds",
				Help:    "Latency of the balance scatter/gather",
				Buckets: prometheus.DefBuckets,
			},
			[]string{},
		),
	}
}
