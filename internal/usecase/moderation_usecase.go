package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/kafka"
	"github.com/vendora/marketplace-service/internal/infrastructure/logger"
	"github.com/vendora/marketplace-service/internal/infrastructure/metrics"
	productdto "github.com/vendora/marketplace-service/internal/usecase/dto/product"
	vendordto "github.com/vendora/marketplace-service/internal/usecase/dto/vendor"
)

type ModerationUsecase interface {
	ModerateVendor(ctx context.Context, input *vendordto.ModerateVendorInput) error
	SetProductStatus(ctx context.Context, input *productdto.SetProductStatusInput) (*domain.Product, error)
}

type DefaultModerationUsecase struct {
	ProfileRepo domain.VendorProfileRepository
	ProductRepo domain.ProductRepository
	Audit       logger.ModerationAuditLogger
	Publisher   domain.PublisherPort
	Metrics     *metrics.MarketplaceMetrics
}

func NewDefaultModerationUsecase(
	profileRepo domain.VendorProfileRepository,
	productRepo domain.ProductRepository,
	audit logger.ModerationAuditLogger,
	pub domain.PublisherPort,
	m *metrics.MarketplaceMetrics,
) *DefaultModerationUsecase {
	return &DefaultModerationUsecase{
		ProfileRepo: profileRepo,
		ProductRepo: productRepo,
		Audit:       audit,
		Publisher:   pub,
		Metrics:     m,
	}
}

// ModerateVendor moves a vendor profile between PENDING/APPROVED/BLOCKED.
// Any state may move to any other, but only through this explicit admin
// action. Blocking does not flip IsPublic; the visibility evaluator already
// treats non-APPROVED profiles as hidden on the marketplace.
func (uc *DefaultModerationUsecase) ModerateVendor(ctx context.Context, input *vendordto.ModerateVendorInput) error {
	status, err := domain.ParseVendorStatus(input.Status)
	if err != nil {
		return fmt.Errorf("vendor status %q: %w", input.Status, err)
	}

	profile, err := uc.ProfileRepo.GetVendorProfileByID(input.VendorProfileID)
	if err != nil {
		return fmt.Errorf("load vendor profile: %w", err)
	}
	fromStatus := profile.Status

	if err := uc.ProfileRepo.SetModerationState(profile.ID, status, input.IsPublic, input.ModerationNote); err != nil {
		return fmt.Errorf("set vendor moderation state: %w", err)
	}

	uc.recordModeration(ctx, "vendor_profile", profile.ID, string(fromStatus), string(status), input.AdminID, input.ModerationNote)
	return nil
}

// SetProductStatus is the single write path for product status. A transition
// to BLOCKED always writes isActive=false in the same UPDATE; a write
// attempting BLOCKED with isActive=true cannot be expressed here, which is
// how the invariant is enforced. Leaving BLOCKED never restores isActive; a
// vendor republish does that explicitly.
func (uc *DefaultModerationUsecase) SetProductStatus(ctx context.Context, input *productdto.SetProductStatusInput) (*domain.Product, error) {
	status, err := domain.ParseProductStatus(input.Status)
	if err != nil {
		return nil, fmt.Errorf("product status %q: %w", input.Status, err)
	}

	product, err := uc.ProductRepo.GetProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	fromStatus := product.Status

	if !input.ActorIsAdmin {
		// Vendors may only toggle DRAFT<->ACTIVE on their own products.
		if product.VendorID != input.ActorID {
			return nil, domain.ErrProductNotFound
		}
		if fromStatus == domain.ProductBlocked || status == domain.ProductBlocked {
			return nil, fmt.Errorf("vendor cannot change a blocked state: %w", domain.ErrCapabilityDenied)
		}
	}

	isActive := nextActiveFlag(fromStatus, status)
	if err := uc.ProductRepo.SetStatus(product.ID, status, isActive, input.ModerationNote); err != nil {
		return nil, fmt.Errorf("set product status: %w", err)
	}
	product.Status = status
	product.IsActive = isActive
	product.ModerationNote = input.ModerationNote
	product.UpdatedAt = time.Now()

	if input.ActorIsAdmin {
		uc.recordModeration(ctx, "product", product.ID, string(fromStatus), string(status), input.ActorID, input.ModerationNote)
	}
	return product, nil
}

// nextActiveFlag decides the isActive value written together with a status
// transition. BLOCKED always forces false; leaving BLOCKED keeps the product
// inactive until an explicit republish (an ACTIVE->ACTIVE write).
func nextActiveFlag(from, to domain.ProductStatus) bool {
	switch {
	case to == domain.ProductBlocked:
		return false
	case to == domain.ProductDraft:
		return false
	case from == domain.ProductBlocked:
		return false
	default:
		return true
	}
}

func (uc *DefaultModerationUsecase) recordModeration(ctx context.Context, entity, id, from, to, adminID, note string) {
	if uc.Metrics != nil {
		uc.Metrics.ModerationTransitionsTotal.WithLabelValues(entity, to).Inc()
	}

	if uc.Audit != nil {
		err := uc.Audit.LogModeration(ctx, logger.ModerationEvent{
			AdminID:    adminID,
			EntityType: entity,
			EntityID:   id,
			FromStatus: from,
			ToStatus:   to,
			Note:       note,
			Timestamp:  time.Now(),
		})
		if err != nil {
			slog.Error("failed to write moderation audit row", "entity", entity, "entity_id", id, "error", err.Error())
		}
	}

	if uc.Publisher != nil {
		event := kafka.ModerationEvent{
			EntityType: entity,
			EntityID:   id,
			FromStatus: from,
			ToStatus:   to,
			AdminID:    adminID,
		}
		go func() {
			if err := kafka.PublishJSON(uc.Publisher, kafka.TopicModerationEvents, id, event); err != nil {
				slog.Error("failed to publish moderation event", "entity_id", id, "error", err.Error())
			}
		}()
	}
}
