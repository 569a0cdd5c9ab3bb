package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
	"github.com/CareerPath-2025/recommendation-service/internal/validator"
)

type opportunityService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	cache     *cache.CacheManager
	scorer    *matching.Scorer
}

func NewOpportunityService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, v *validator.Validator, cacheManager *cache.CacheManager, scorer *matching.Scorer) OpportunityService {
	return &opportunityService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: v,
		cache:     cacheManager,
		scorer:    scorer,
	}
}

func (s *opportunityService) Create(ctx context.Context, req *OpportunityCreateRequest) (*models.Opportunity, error) {
	if verrs := s.validator.GetBusinessValidator().ValidateOpportunityCreate(req); len(verrs) > 0 {
		return nil, verrs
	}

	opp := &models.Opportunity{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Stipend:        req.Stipend,
		Duration:       req.Duration,
		ApplyURL:       req.ApplyURL,
		Description:    req.Description,
		SkillsRequired: datatypes.JSONSlice[string](req.SkillsRequired),
		IsActive:       true,
		PostedAt:       req.PostedAt,
	}

	if err := s.repo.Opportunity().Create(ctx, nil, opp); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	cache.InvalidateOpportunityCache(ctx, s.cache)

	s.logger.Info("Opportunity created", "id", opp.ID, "title", opp.Title, "company", opp.Company)

	return opp, nil
}

func (s *opportunityService) GetByID(ctx context.Context, id uint) (*models.Opportunity, error) {
	opp, err := s.repo.Opportunity().GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: opportunity %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	return opp, nil
}

func (s *opportunityService) List(ctx context.Context, params models.ListOpportunitiesParams) (*models.PaginatedResponse, error) {
	if params.Size <= 0 || params.Size > 100 {
		params.Size = 20
	}
	if params.Page < 0 {
		params.Page = 0
	}

	filters := repositories.OpportunityFilters{
		Search:    params.Search,
		Limit:     params.Size,
		Offset:    params.Page * params.Size,
		SortBy:    params.SortBy,
		SortOrder: params.SortDir,
	}
	if params.ActiveOnly {
		active := true
		filters.IsActive = &active
	}

	opportunities, total, err := s.repo.Opportunity().List(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	if params.MatchForUser != "" {
		opportunities = s.annotateMatches(ctx, params.MatchForUser, opportunities)
	}

	totalPages := int((total + int64(params.Size) - 1) / int64(params.Size))

	return &models.PaginatedResponse{
		Content:          opportunities,
		TotalElements:    total,
		TotalPages:       totalPages,
		Size:             params.Size,
		Page:             params.Page,
		First:            params.Page == 0,
		Last:             params.Page >= totalPages-1,
		NumberOfElements: len(opportunities),
		Empty:            len(opportunities) == 0,
	}, nil
}

// annotateMatches attaches match scores for the given user's profile to
// copies of the listed postings. Page order is preserved. A user without
// a profile gets the plain listing back.
func (s *opportunityService) annotateMatches(ctx context.Context, userID string, opportunities []*models.Opportunity) []*models.Opportunity {
	profile, err := s.repo.Profile().GetByID(ctx, nil, userID)
	if err != nil {
		s.logger.Warn("Skipping match annotation, profile unavailable", "user_id", userID, "error", err)
		return opportunities
	}

	skills := profile.SkillNames()
	annotated := make([]*models.Opportunity, 0, len(opportunities))
	for _, opp := range opportunities {
		result := s.scorer.Score(skills, opp.SkillsRequired)

		clone := *opp
		score := result.Score
		clone.MatchScore = &score
		clone.MatchingSkills = result.MatchingSkills
		annotated = append(annotated, &clone)
	}
	return annotated
}

func (s *opportunityService) SetActive(ctx context.Context, id uint, active bool) error {
	if err := s.repo.Opportunity().SetActive(ctx, nil, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: opportunity %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to update opportunity status: %w", err)
	}

	cache.InvalidateOpportunityCache(ctx, s.cache)

	s.logger.Info("Opportunity status updated", "id", id, "is_active", active)
	return nil
}
