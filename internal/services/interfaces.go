package services

import (
	"context"
	"io"
	"time"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use request types from the models package
type GenerateRecommendationsRequest = models.GenerateRecommendationsRequest
type OpportunityCreateRequest = models.OpportunityCreateRequest

// SkillGapReport is the analysis result for one (user, target role) pair.
// TargetRole echoes the caller's input even when the role was not
// recognized and the baseline profile was used.
type SkillGapReport struct {
	UserID                 string                    `json:"user_id"`
	TargetRole             string                    `json:"target_role"`
	RoleRecognized         bool                      `json:"role_recognized"`
	RequiredSkills         []string                  `json:"required_skills"`
	MissingSkills          []string                  `json:"missing_skills"`
	CurrentMatchPercentage int                       `json:"current_match_percentage"`
	LearningPath           []models.LearningPathItem `json:"learning_path"`
}

// RecommendationsResponse is the orchestrator output. Exactly one of the
// payload fields is populated, matching the requested type.
type RecommendationsResponse struct {
	UserID      string                          `json:"user_id"`
	Type        models.RecommendationType       `json:"type"`
	Internships []*models.Opportunity           `json:"internships,omitempty"`
	Projects    []*models.ProjectRecommendation `json:"projects,omitempty"`
	SkillGap    *SkillGapReport                 `json:"skill_gap,omitempty"`
	GeneratedAt time.Time                       `json:"generated_at"`
}

// ImportResult summarizes one spreadsheet import run.
type ImportResult struct {
	Source      string   `json:"source"`
	Imported    int      `json:"imported"`
	Skipped     int      `json:"skipped"`
	RowErrors   []string `json:"row_errors,omitempty"`
	TotalRows   int      `json:"total_rows"`
	CompletedAt time.Time `json:"completed_at"`
}

// ===== SERVICE INTERFACES =====

// InternshipService ranks active opportunity postings against a profile.
type InternshipService interface {
	Recommend(ctx context.Context, profile *models.Profile) ([]*models.Opportunity, error)
}

// ProjectService recommends catalog projects for a profile and persists
// the top picks.
type ProjectService interface {
	Recommend(ctx context.Context, profile *models.Profile) ([]*models.ProjectRecommendation, error)
	GetByUser(ctx context.Context, userID string) ([]*models.ProjectRecommendation, error)
}

// SkillGapService analyzes a profile against a target role's required
// skills and persists the report.
type SkillGapService interface {
	Analyze(ctx context.Context, profile *models.Profile) (*SkillGapReport, error)
	GetByUser(ctx context.Context, userID string) ([]*models.SkillGap, error)
	Roles() []string
}

// RecommendationService orchestrates generation: load the profile,
// dispatch on the requested type, persist results, publish an event.
type RecommendationService interface {
	Generate(ctx context.Context, userID string, recType models.RecommendationType) (*RecommendationsResponse, error)
}

// OpportunityService manages the opportunity inventory.
type OpportunityService interface {
	Create(ctx context.Context, req *OpportunityCreateRequest) (*models.Opportunity, error)
	GetByID(ctx context.Context, id uint) (*models.Opportunity, error)
	List(ctx context.Context, params models.ListOpportunitiesParams) (*models.PaginatedResponse, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

// OpportunityImportService ingests opportunity postings from spreadsheets.
type OpportunityImportService interface {
	ImportXLSX(ctx context.Context, r io.Reader, source string) (*ImportResult, error)
}

// ===== SERVICE MANAGER =====

// ServiceManager provides access to all services and manages their lifecycle
type ServiceManager interface {
	Internship() InternshipService
	Project() ProjectService
	SkillGap() SkillGapService
	Recommendation() RecommendationService
	Opportunity() OpportunityService
	OpportunityImport() OpportunityImportService
	Dashboard() DashboardService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
