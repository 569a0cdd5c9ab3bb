package repositories

import "context"

// Repository aggregates all domain repository interfaces
type Repository interface {
	// Student profile domain (owned by onboarding, read here)
	Profile() ProfileRepository

	// Opportunity domain
	Opportunity() OpportunityRepository

	// Generated recommendation domain
	ProjectRecommendation() ProjectRecommendationRepository
	SkillGap() SkillGapRepository

	// User domain (read-only, identity lives in Casdoor)
	User() UserRepository

	// Dashboard domain
	Dashboard() DashboardRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
