package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Real-Streeter/liberty-command/internal/rfp/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormRfpRepository struct {
	db *gorm.DB
}

func NewGormRfpRepository(db *gorm.DB) RfpRepository {
	return &gormRfpRepository{db: db}
}

func (r *gormRfpRepository) Create(ctx context.Context, rfp *domain.Rfp) error {
	if rfp.ID == "" {
		rfp.ID = "rfp-" + uuid.NewString()
	}
	rfp.CreatedAt = time.Now()
	rfp.UpdatedAt = rfp.CreatedAt
	return r.db.WithContext(ctx).Create(rfp).Error
}

func (r *gormRfpRepository) FindAll(ctx context.Context) ([]*domain.Rfp, error) {
	var rfps []*domain.Rfp
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rfps).Error
	return rfps, err
}

func (r *gormRfpRepository) FindByID(ctx context.Context, id string) (*domain.Rfp, error) {
	var rfp domain.Rfp
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rfp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rfp, nil
}

func (r *gormRfpRepository) Update(ctx context.Context, rfp *domain.Rfp) error {
	rfp.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(rfp).Error
}

func (r *gormRfpRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Rfp{})
	return res.RowsAffected > 0, res.Error
}
