package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type OpportunityFilters struct {
	IsActive   *bool      `json:"is_active"`
	Company    *string    `json:"company"`
	Search     string     `json:"search"` // matches title or company
	PostedFrom *time.Time `json:"posted_from"`
	PostedTo   *time.Time `json:"posted_to"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	SortBy     string     `json:"sort_by"`    // "posted_at", "created_at", "title", "company"
	SortOrder  string     `json:"sort_order"` // "asc", "desc"
}

// ===== PROFILE DOMAIN =====

// ProfileRepository accesses onboarding profiles. The recommendation
// engine only reads; writes exist for the onboarding flow and seeding.
type ProfileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, profile *models.Profile) error
	Update(ctx context.Context, tx *gorm.DB, profile *models.Profile) error

	// GetByID loads a profile with its skills preloaded
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Profile, error)
	Exists(ctx context.Context, tx *gorm.DB, id string) (bool, error)
}

// ===== OPPORTUNITY DOMAIN =====

type OpportunityRepository interface {
	Create(ctx context.Context, tx *gorm.DB, opportunity *models.Opportunity) error
	CreateBatch(ctx context.Context, tx *gorm.DB, opportunities []*models.Opportunity) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Opportunity, error)

	// ListActive returns all active postings for the matching engine
	ListActive(ctx context.Context, tx *gorm.DB) ([]*models.Opportunity, error)
	List(ctx context.Context, tx *gorm.DB, filters OpportunityFilters) ([]*models.Opportunity, int64, error)

	SetActive(ctx context.Context, tx *gorm.DB, id uint, active bool) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

// ===== RECOMMENDATION DOMAIN =====

// ProjectRecommendationRepository persists top-N project suggestions.
// Writes are upserts keyed on (user_id, title).
type ProjectRecommendationRepository interface {
	UpsertBatch(ctx context.Context, tx *gorm.DB, recs []*models.ProjectRecommendation) error
	GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.ProjectRecommendation, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) error
}

// SkillGapRepository persists skill gap reports. Writes are upserts
// keyed on (user_id, target_role): one logical report per pair.
type SkillGapRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, gap *models.SkillGap) error
	GetByUserAndRole(ctx context.Context, tx *gorm.DB, userID, targetRole string) (*models.SkillGap, error)
	GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.SkillGap, error)
}
