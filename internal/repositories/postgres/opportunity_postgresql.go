package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

type opportunityRepository struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewOpportunityPostgreSQL(db *gorm.DB) repositories.OpportunityRepository {
	return &opportunityRepository{db: db, helpers: NewSharedHelpers(db)}
}

func (r *opportunityRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *opportunityRepository) Create(ctx context.Context, tx *gorm.DB, opportunity *models.Opportunity) error {
	db := r.getDB(tx)

	if err := db.WithContext(ctx).Create(opportunity).Error; err != nil {
		return fmt.Errorf("failed to create opportunity: %w", err)
	}
	return nil
}

func (r *opportunityRepository) CreateBatch(ctx context.Context, tx *gorm.DB, opportunities []*models.Opportunity) error {
	if len(opportunities) == 0 {
		return nil
	}
	db := r.getDB(tx)

	if err := db.WithContext(ctx).CreateInBatches(opportunities, 100).Error; err != nil {
		return fmt.Errorf("failed to create opportunities: %w", err)
	}
	return nil
}

func (r *opportunityRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Opportunity, error) {
	db := r.getDB(tx)

	var opportunity models.Opportunity
	err := db.WithContext(ctx).First(&opportunity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}

	return &opportunity, nil
}

// ListActive returns every active posting. The matching engine scores
// all of them, so there is no pagination here.
func (r *opportunityRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]*models.Opportunity, error) {
	db := r.getDB(tx)

	var opportunities []*models.Opportunity
	if err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("posted_at DESC NULLS LAST, id").
		Find(&opportunities).Error; err != nil {
		return nil, fmt.Errorf("failed to list active opportunities: %w", err)
	}

	return opportunities, nil
}

func (r *opportunityRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.OpportunityFilters) ([]*models.Opportunity, int64, error) {
	db := r.getDB(tx)

	query := db.WithContext(ctx).Model(&models.Opportunity{})
	query = r.helpers.ApplyOpportunityFilters(query, filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opportunities: %w", err)
	}

	query = r.helpers.ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)

	var opportunities []*models.Opportunity
	if err := query.Find(&opportunities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return opportunities, total, nil
}

func (r *opportunityRepository) SetActive(ctx context.Context, tx *gorm.DB, id uint, active bool) error {
	db := r.getDB(tx)

	result := db.WithContext(ctx).
		Model(&models.Opportunity{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update opportunity status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *opportunityRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)

	var count int64
	if err := db.WithContext(ctx).
		Model(&models.Opportunity{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count opportunities: %w", err)
	}

	return count, nil
}
