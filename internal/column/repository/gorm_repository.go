package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Real-Streeter/liberty-command/internal/column/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormColumnRepository implements ColumnRepository using GORM
type gormColumnRepository struct {
	db *gorm.DB
}

// NewGormColumnRepository creates a new GORM-based ColumnRepository
func NewGormColumnRepository(db *gorm.DB) ColumnRepository {
	return &gormColumnRepository{db: db}
}

func (r *gormColumnRepository) FindAll(ctx context.Context) ([]*domain.Column, error) {
	var columns []*domain.Column
	err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

func (r *gormColumnRepository) FindByID(ctx context.Context, id string) (*domain.Column, error) {
	var column domain.Column
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

func (r *gormColumnRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Column{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// EnsureColumns is an insert-or-ignore: ON CONFLICT (id) DO NOTHING
func (r *gormColumnRepository) EnsureColumns(ctx context.Context, columns []domain.Column) error {
	if len(columns) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]domain.Column, len(columns))
	for i, c := range columns {
		c.CreatedAt = now
		c.UpdatedAt = now
		rows[i] = c
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&rows).Error
}
