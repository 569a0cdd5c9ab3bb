package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/catalog"
	"github.com/CareerPath-2025/recommendation-service/internal/events"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
	"github.com/CareerPath-2025/recommendation-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	// Logging configuration
	EnableDebugLogging bool
	EnableMetrics      bool
	LogLevel           slog.Level

	// Service-specific configurations
	Internship  ServiceConfig
	Project     ServiceConfig
	SkillGap    ServiceConfig
	Opportunity ServiceConfig
	Import      ServiceConfig

	// Global settings
	DefaultTimeout    time.Duration
	MaxRetries        int
	RateLimitingRules map[string]RateLimit
}

type ServiceConfig struct {
	Enabled         bool
	CacheEnabled    bool
	CacheTTL        time.Duration
	ValidationLevel ValidationLevel
	AuditingEnabled bool
	MetricsEnabled  bool
}

type ValidationLevel int

const (
	ValidationBasic ValidationLevel = iota
	ValidationStrict
	ValidationFull
)

type RateLimit struct {
	RequestsPerMinute int
	BurstSize         int
}

// Dependencies bundles the shared collaborators every service draws from.
type Dependencies struct {
	DB           *gorm.DB
	Repo         repositories.Repository
	Logger       *slog.Logger
	Validator    *validator.Validator
	Catalog      *catalog.Catalog
	Scorer       *matching.Scorer
	Publisher    events.EventPublisher
	CacheManager *cache.CacheManager
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps   Dependencies
	config ServiceManagerConfig

	// Service instances
	internshipService InternshipService
	projectService    ProjectService
	skillGapService   SkillGapService
	recommendation    RecommendationService
	opportunity       OpportunityService
	importService     OpportunityImportService
	dashboardService  DashboardService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(deps Dependencies, config ServiceManagerConfig) ServiceManager {
	if deps.Scorer == nil {
		deps.Scorer = matching.NewScorer(nil)
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NoopEventPublisher{}
	}
	if deps.CacheManager == nil {
		deps.CacheManager = cache.NewCacheManager(nil)
	}
	return &serviceManager{
		deps:   deps,
		config: config,
	}
}

// NewDefaultServiceManager creates a service manager with default configuration
func NewDefaultServiceManager(deps Dependencies) ServiceManager {
	config := ServiceManagerConfig{
		EnableDebugLogging: false,
		EnableMetrics:      true,
		LogLevel:           slog.LevelInfo,

		Internship: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        15 * time.Minute,
			ValidationLevel: ValidationStrict,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		Project: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        15 * time.Minute,
			ValidationLevel: ValidationStrict,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		SkillGap: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        15 * time.Minute,
			ValidationLevel: ValidationStrict,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		Opportunity: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        10 * time.Minute,
			ValidationLevel: ValidationFull,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		Import: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    false,
			CacheTTL:        0,
			ValidationLevel: ValidationFull,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},

		DefaultTimeout:    30 * time.Second,
		MaxRetries:        3,
		RateLimitingRules: make(map[string]RateLimit),
	}

	return NewServiceManager(deps, config)
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.deps.Logger.Info("Initializing service manager")

	if err := sm.initializeServices(ctx); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	sm.initialized = true
	sm.deps.Logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) initializeServices(ctx context.Context) error {
	d := sm.deps

	if sm.config.Internship.Enabled {
		sm.internshipService = NewInternshipService(d.Repo, d.DB, d.Logger, d.Scorer, d.CacheManager)
		d.Logger.Info("Internship service initialized")
	}

	if sm.config.Project.Enabled {
		sm.projectService = NewProjectService(d.Repo, d.DB, d.Logger, d.Catalog, d.Scorer)
		d.Logger.Info("Project service initialized")
	}

	if sm.config.SkillGap.Enabled {
		sm.skillGapService = NewSkillGapService(d.Repo, d.DB, d.Logger, d.Catalog, d.Scorer)
		d.Logger.Info("SkillGap service initialized")
	}

	// The orchestrator needs the three engines above
	sm.recommendation = NewRecommendationService(
		d.Repo, d.DB, d.Logger,
		sm.internshipService, sm.projectService, sm.skillGapService,
		d.Publisher, d.CacheManager,
	)
	d.Logger.Info("Recommendation service initialized")

	if sm.config.Opportunity.Enabled {
		sm.opportunity = NewOpportunityService(d.Repo, d.DB, d.Logger, d.Validator, d.CacheManager, d.Scorer)
		d.Logger.Info("Opportunity service initialized")
	}

	if sm.config.Import.Enabled {
		sm.importService = NewOpportunityImportService(d.Repo, d.DB, d.Logger, d.Validator, d.Publisher, d.CacheManager)
		d.Logger.Info("Opportunity import service initialized")
	}

	sm.dashboardService = NewDashboardService(d.Repo, d.DB, d.Logger)
	d.Logger.Info("Dashboard service initialized")

	return nil
}

// Service getters

func (sm *serviceManager) Internship() InternshipService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	if sm.config.Internship.Enabled && sm.internshipService != nil {
		return sm.internshipService
	}

	panic("internship service not enabled or not initialized")
}

func (sm *serviceManager) Project() ProjectService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	if sm.config.Project.Enabled && sm.projectService != nil {
		return sm.projectService
	}

	panic("project service not enabled or not initialized")
}

func (sm *serviceManager) SkillGap() SkillGapService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	if sm.config.SkillGap.Enabled && sm.skillGapService != nil {
		return sm.skillGapService
	}

	panic("skill gap service not enabled or not initialized")
}

func (sm *serviceManager) Recommendation() RecommendationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	if sm.recommendation != nil {
		return sm.recommendation
	}

	panic("recommendation service not initialized")
}

func (sm *serviceManager) Opportunity() OpportunityService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	if sm.config.Opportunity.Enabled && sm.opportunity != nil {
		return sm.opportunity
	}

	panic("opportunity service not enabled or not initialized")
}

func (sm *serviceManager) OpportunityImport() OpportunityImportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	if sm.config.Import.Enabled && sm.importService != nil {
		return sm.importService
	}

	panic("opportunity import service not enabled or not initialized")
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	if sm.dashboardService != nil {
		return sm.dashboardService
	}

	panic("dashboard service not initialized")
}

// Health and lifecycle

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("Shutting down service manager")

	if err := sm.deps.Publisher.Close(); err != nil {
		sm.deps.Logger.Error("Failed to close event publisher", "error", err)
	}

	sm.shutdown = true
	sm.deps.Logger.Info("Service manager shut down completed")

	return nil
}

// ===== UTILITY METHODS =====

// GetConfig returns the service manager configuration
func (sm *serviceManager) GetConfig() ServiceManagerConfig {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.config
}

// IsInitialized returns whether the service manager has been initialized
func (sm *serviceManager) IsInitialized() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.initialized
}

// IsShutdown returns whether the service manager has been shut down
func (sm *serviceManager) IsShutdown() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.shutdown
}

// WithTimeout creates a context with the default timeout
func (sm *serviceManager) WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, sm.config.DefaultTimeout)
}

// ===== CONFIGURATION VALIDATION =====

// Validate validates the service manager configuration
func (config *ServiceManagerConfig) Validate() error {
	var errors []string

	if config.DefaultTimeout <= 0 {
		errors = append(errors, "default timeout must be positive")
	}

	if config.MaxRetries < 0 {
		errors = append(errors, "max retries cannot be negative")
	}

	if err := config.Internship.validate("internship"); err != nil {
		errors = append(errors, err.Error())
	}
	if err := config.Project.validate("project"); err != nil {
		errors = append(errors, err.Error())
	}
	if err := config.SkillGap.validate("skill_gap"); err != nil {
		errors = append(errors, err.Error())
	}
	if err := config.Opportunity.validate("opportunity"); err != nil {
		errors = append(errors, err.Error())
	}
	if err := config.Import.validate("import"); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

func (sc *ServiceConfig) validate(serviceName string) error {
	if sc.CacheTTL < 0 {
		return fmt.Errorf("%s: cache TTL cannot be negative", serviceName)
	}

	if sc.ValidationLevel < ValidationBasic || sc.ValidationLevel > ValidationFull {
		return fmt.Errorf("%s: invalid validation level", serviceName)
	}

	return nil
}

// ===== FACTORY FUNCTIONS =====

// CreateProductionServiceManager creates a service manager configured for production
func CreateProductionServiceManager(deps Dependencies) ServiceManager {
	config := ServiceManagerConfig{
		EnableDebugLogging: false,
		EnableMetrics:      true,
		LogLevel:           slog.LevelInfo,

		Internship: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        15 * time.Minute,
			ValidationLevel: ValidationFull,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		Project: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        15 * time.Minute,
			ValidationLevel: ValidationFull,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		SkillGap: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        15 * time.Minute,
			ValidationLevel: ValidationFull,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		Opportunity: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    true,
			CacheTTL:        10 * time.Minute,
			ValidationLevel: ValidationFull,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},
		Import: ServiceConfig{
			Enabled:         true,
			CacheEnabled:    false,
			CacheTTL:        0,
			ValidationLevel: ValidationFull,
			AuditingEnabled: true,
			MetricsEnabled:  true,
		},

		DefaultTimeout: 60 * time.Second,
		MaxRetries:     3,
		RateLimitingRules: map[string]RateLimit{
			"recommendation_generate": {RequestsPerMinute: 30, BurstSize: 5},
			"opportunity_import":      {RequestsPerMinute: 10, BurstSize: 2},
		},
	}

	return NewServiceManager(deps, config)
}

// CreateDevelopmentServiceManager creates a service manager configured for development
func CreateDevelopmentServiceManager(deps Dependencies) ServiceManager {
	config := ServiceManagerConfig{
		EnableDebugLogging: true,
		EnableMetrics:      false,
		LogLevel:           slog.LevelDebug,

		Internship: ServiceConfig{
			Enabled:         true,
			ValidationLevel: ValidationBasic,
		},
		Project: ServiceConfig{
			Enabled:         true,
			ValidationLevel: ValidationBasic,
		},
		SkillGap: ServiceConfig{
			Enabled:         true,
			ValidationLevel: ValidationBasic,
		},
		Opportunity: ServiceConfig{
			Enabled:         true,
			ValidationLevel: ValidationBasic,
		},
		Import: ServiceConfig{
			Enabled:         true,
			ValidationLevel: ValidationBasic,
		},

		DefaultTimeout:    10 * time.Second,
		MaxRetries:        1,
		RateLimitingRules: make(map[string]RateLimit),
	}

	return NewServiceManager(deps, config)
}
