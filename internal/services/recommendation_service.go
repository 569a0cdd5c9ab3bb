package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/events"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

type recommendationService struct {
	repo       repositories.Repository
	db         *gorm.DB
	logger     *slog.Logger
	internship InternshipService
	project    ProjectService
	skillGap   SkillGapService
	publisher  events.EventPublisher
	cache      *cache.CacheManager
}

func NewRecommendationService(
	repo repositories.Repository,
	db *gorm.DB,
	logger *slog.Logger,
	internship InternshipService,
	project ProjectService,
	skillGap SkillGapService,
	publisher events.EventPublisher,
	cacheManager *cache.CacheManager,
) RecommendationService {
	return &recommendationService{
		repo:       repo,
		db:         db,
		logger:     logger,
		internship: internship,
		project:    project,
		skillGap:   skillGap,
		publisher:  publisher,
		cache:      cacheManager,
	}
}

// Generate loads the profile, dispatches to the requested engine and
// publishes a generation event. The profile is read-only here; only
// recommendation tables are written.
func (s *recommendationService) Generate(ctx context.Context, userID string, recType models.RecommendationType) (*RecommendationsResponse, error) {
	profile, err := s.repo.Profile().GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	response := &RecommendationsResponse{
		UserID:      userID,
		Type:        recType,
		GeneratedAt: time.Now().UTC(),
	}

	var resultCount int
	switch recType {
	case models.RecommendInternships:
		internships, err := s.internship.Recommend(ctx, profile)
		if err != nil {
			return nil, err
		}
		response.Internships = internships
		resultCount = len(internships)

	case models.RecommendProjects:
		projects, err := s.project.Recommend(ctx, profile)
		if err != nil {
			return nil, err
		}
		response.Projects = projects
		resultCount = len(projects)

	case models.RecommendSkills:
		report, err := s.skillGap.Analyze(ctx, profile)
		if err != nil {
			return nil, err
		}
		response.SkillGap = report
		resultCount = len(report.MissingSkills)

	default:
		return nil, fmt.Errorf("%w: unknown recommendation type %q", ErrInvalidInput, recType)
	}

	cache.InvalidateUserRecommendations(ctx, s.cache, userID)

	event := events.NewEvent(events.EventRecommendationGenerated, events.RecommendationGeneratedEvent{
		UserID:             userID,
		RecommendationType: string(recType),
		ResultCount:        resultCount,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Generation already succeeded; a lost event is not worth failing the request
		s.logger.Error("Failed to publish recommendation event",
			"user_id", userID, "type", recType, "error", err)
	}

	return response, nil
}
