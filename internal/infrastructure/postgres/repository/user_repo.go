package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vendora/marketplace-service/internal/domain"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/vendora/marketplace-service/internal/infrastructure/postgres/models"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (r *DefaultUserRepository) GetUserByID(id string) (*domain.User, error) {
	var model models.UserModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) SetUserBlocked(id string, blocked bool) error {
	result := r.db.Model(&models.UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_blocked": blocked,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
