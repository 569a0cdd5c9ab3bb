package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	profiles      map[string]*models.Profile
	opportunities []*models.Opportunity

	upsertedProjects []*models.ProjectRecommendation
	upsertedGaps     []*models.SkillGap
	createdBatch     []*models.Opportunity

	listActiveCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeRepo) Profile() repositories.ProfileRepository { return &fakeProfileRepo{f} }
func (f *fakeRepo) Opportunity() repositories.OpportunityRepository {
	return &fakeOpportunityRepo{f}
}
func (f *fakeRepo) ProjectRecommendation() repositories.ProjectRecommendationRepository {
	return &fakeProjectRepo{f}
}
func (f *fakeRepo) SkillGap() repositories.SkillGapRepository { return &fakeSkillGapRepo{f} }
func (f *fakeRepo) User() repositories.UserRepository         { return nil }
func (f *fakeRepo) Dashboard() repositories.DashboardRepository {
	return nil
}
func (f *fakeRepo) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(f)
}
func (f *fakeRepo) Ping(ctx context.Context) error { return nil }
func (f *fakeRepo) Close() error                   { return nil }

type fakeProfileRepo struct{ f *fakeRepo }

func (r *fakeProfileRepo) Create(ctx context.Context, tx *gorm.DB, p *models.Profile) error {
	r.f.profiles[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, tx *gorm.DB, p *models.Profile) error {
	r.f.profiles[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Profile, error) {
	p, ok := r.f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Exists(ctx context.Context, tx *gorm.DB, id string) (bool, error) {
	_, ok := r.f.profiles[id]
	return ok, nil
}

type fakeOpportunityRepo struct{ f *fakeRepo }

func (r *fakeOpportunityRepo) Create(ctx context.Context, tx *gorm.DB, o *models.Opportunity) error {
	o.ID = uint(len(r.f.opportunities) + 1)
	r.f.opportunities = append(r.f.opportunities, o)
	return nil
}

func (r *fakeOpportunityRepo) CreateBatch(ctx context.Context, tx *gorm.DB, os []*models.Opportunity) error {
	r.f.createdBatch = append(r.f.createdBatch, os...)
	r.f.opportunities = append(r.f.opportunities, os...)
	return nil
}

func (r *fakeOpportunityRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Opportunity, error) {
	for _, o := range r.f.opportunities {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOpportunityRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*models.Opportunity, error) {
	r.f.listActiveCalls++
	var active []*models.Opportunity
	for _, o := range r.f.opportunities {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active, nil
}

func (r *fakeOpportunityRepo) List(ctx context.Context, tx *gorm.DB, filters repositories.OpportunityFilters) ([]*models.Opportunity, int64, error) {
	return r.f.opportunities, int64(len(r.f.opportunities)), nil
}

func (r *fakeOpportunityRepo) SetActive(ctx context.Context, tx *gorm.DB, id uint, active bool) error {
	for _, o := range r.f.opportunities {
		if o.ID == id {
			o.IsActive = active
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeOpportunityRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.f.opportunities)), nil
}

type fakeProjectRepo struct{ f *fakeRepo }

func (r *fakeProjectRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, recs []*models.ProjectRecommendation) error {
	// Mirror the (user_id, title) upsert key
	for _, rec := range recs {
		replaced := false
		for i, existing := range r.f.upsertedProjects {
			if existing.UserID == rec.UserID && existing.Title == rec.Title {
				r.f.upsertedProjects[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			r.f.upsertedProjects = append(r.f.upsertedProjects, rec)
		}
	}
	return nil
}

func (r *fakeProjectRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.ProjectRecommendation, error) {
	var out []*models.ProjectRecommendation
	for _, rec := range r.f.upsertedProjects {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) error {
	kept := r.f.upsertedProjects[:0]
	for _, rec := range r.f.upsertedProjects {
		if rec.UserID != userID {
			kept = append(kept, rec)
		}
	}
	r.f.upsertedProjects = kept
	return nil
}

type fakeSkillGapRepo struct{ f *fakeRepo }

func (r *fakeSkillGapRepo) Upsert(ctx context.Context, tx *gorm.DB, gap *models.SkillGap) error {
	for i, existing := range r.f.upsertedGaps {
		if existing.UserID == gap.UserID && existing.TargetRole == gap.TargetRole {
			r.f.upsertedGaps[i] = gap
			return nil
		}
	}
	r.f.upsertedGaps = append(r.f.upsertedGaps, gap)
	return nil
}

func (r *fakeSkillGapRepo) GetByUserAndRole(ctx context.Context, tx *gorm.DB, userID, targetRole string) (*models.SkillGap, error) {
	for _, gap := range r.f.upsertedGaps {
		if gap.UserID == userID && gap.TargetRole == targetRole {
			return gap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSkillGapRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.SkillGap, error) {
	var out []*models.SkillGap
	for _, gap := range r.f.upsertedGaps {
		if gap.UserID == userID {
			out = append(out, gap)
		}
	}
	return out, nil
}

// profileWithSkills builds a profile with declared skill names.
func profileWithSkills(id, branch, targetRole string, skills ...string) *models.Profile {
	p := &models.Profile{
		ID:         id,
		Branch:     branch,
		TargetRole: targetRole,
		CreatedAt:  time.Now(),
	}
	for _, name := range skills {
		p.Skills = append(p.Skills, models.UserSkill{ProfileID: id, Name: name})
	}
	return p
}
