package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

func opportunity(id uint, title string, skills ...string) *models.Opportunity {
	return &models.Opportunity{
		ID:             id,
		Title:          title,
		Company:        "Acme",
		SkillsRequired: datatypes.JSONSlice[string](skills),
		IsActive:       true,
	}
}

func TestRankOpportunities_OrdersByScoreDescending(t *testing.T) {
	scorer := matching.NewScorer(nil)
	userSkills := []string{"Python", "SQL"}

	opps := []*models.Opportunity{
		opportunity(1, "Low", "Java", "Kubernetes", "Go"),
		opportunity(2, "High", "Python", "SQL"),
		opportunity(3, "Mid", "Python", "Django", "SQL"),
	}

	ranked := RankOpportunities(scorer, userSkills, opps)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	if ranked[0].Title != "High" || ranked[1].Title != "Mid" || ranked[2].Title != "Low" {
		t.Errorf("unexpected order: %s, %s, %s", ranked[0].Title, ranked[1].Title, ranked[2].Title)
	}
	if *ranked[0].MatchScore != 100 {
		t.Errorf("expected top score 100, got %d", *ranked[0].MatchScore)
	}
	if *ranked[1].MatchScore != 67 {
		t.Errorf("expected mid score 67, got %d", *ranked[1].MatchScore)
	}
}

func TestRankOpportunities_StableOnTies(t *testing.T) {
	scorer := matching.NewScorer(nil)

	opps := []*models.Opportunity{
		opportunity(1, "First", "Python"),
		opportunity(2, "Second", "Python"),
		opportunity(3, "Third", "Python"),
	}

	ranked := RankOpportunities(scorer, []string{"Python"}, opps)

	for i, want := range []string{"First", "Second", "Third"} {
		if ranked[i].Title != want {
			t.Errorf("position %d: expected %s, got %s", i, want, ranked[i].Title)
		}
	}
}

func TestRankOpportunities_CapsResults(t *testing.T) {
	scorer := matching.NewScorer(nil)

	opps := make([]*models.Opportunity, 0, 30)
	for i := 0; i < 30; i++ {
		opps = append(opps, opportunity(uint(i+1), fmt.Sprintf("Posting %d", i), "Python"))
	}

	ranked := RankOpportunities(scorer, []string{"Python"}, opps)

	if len(ranked) != maxInternshipResults {
		t.Errorf("expected %d results, got %d", maxInternshipResults, len(ranked))
	}
}

func TestRankOpportunities_DoesNotMutateInput(t *testing.T) {
	scorer := matching.NewScorer(nil)

	original := opportunity(1, "Posting", "Python")
	ranked := RankOpportunities(scorer, []string{"Python"}, []*models.Opportunity{original})

	if original.MatchScore != nil {
		t.Error("stored record must not carry match annotations")
	}
	if ranked[0].MatchScore == nil || *ranked[0].MatchScore != 100 {
		t.Error("returned copy must carry the match score")
	}
}

func TestRankOpportunities_EmptyRequirementsScoreFull(t *testing.T) {
	scorer := matching.NewScorer(nil)

	ranked := RankOpportunities(scorer, []string{"Python"}, []*models.Opportunity{
		opportunity(1, "No requirements"),
	})

	if *ranked[0].MatchScore != 100 {
		t.Errorf("posting without requirements should score 100, got %d", *ranked[0].MatchScore)
	}
	if len(ranked[0].MatchingSkills) != 0 {
		t.Errorf("expected no matching skills, got %v", ranked[0].MatchingSkills)
	}
}

func TestInternshipService_Recommend(t *testing.T) {
	repo := newFakeRepo()
	repo.opportunities = []*models.Opportunity{
		opportunity(1, "Active", "Python"),
		{ID: 2, Title: "Inactive", Company: "Acme", SkillsRequired: datatypes.JSONSlice[string]{"Python"}, IsActive: false},
	}

	svc := NewInternshipService(repo, nil, testLogger(), matching.NewScorer(nil), nil)
	profile := profileWithSkills("u1", "Computer Science", "", "Python")

	ranked, err := svc.Recommend(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected only active postings, got %d", len(ranked))
	}
	if ranked[0].Title != "Active" {
		t.Errorf("expected Active, got %s", ranked[0].Title)
	}
}

func TestInternshipService_RecommendServesCachedListing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cm := cache.NewCacheManager(client)

	repo := newFakeRepo()
	repo.opportunities = []*models.Opportunity{opportunity(1, "From repository", "Python")}

	cached := []*models.Opportunity{opportunity(2, "From cache", "Python")}
	if err := cm.Opportunity.Set(context.Background(), activeOpportunitiesCacheKey, cached, time.Minute); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	svc := NewInternshipService(repo, nil, testLogger(), matching.NewScorer(nil), cm)
	ranked, err := svc.Recommend(context.Background(), profileWithSkills("u1", "Computer Science", "", "Python"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ranked) != 1 || ranked[0].Title != "From cache" {
		t.Fatalf("expected the cached listing, got %v", ranked)
	}
	if repo.listActiveCalls != 0 {
		t.Errorf("cached listing must not hit the repository, got %d calls", repo.listActiveCalls)
	}
}

func TestInternshipService_RecommendFallsBackToRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cm := cache.NewCacheManager(client)

	repo := newFakeRepo()
	repo.opportunities = []*models.Opportunity{opportunity(1, "From repository", "Python")}

	svc := NewInternshipService(repo, nil, testLogger(), matching.NewScorer(nil), cm)
	ranked, err := svc.Recommend(context.Background(), profileWithSkills("u1", "Computer Science", "", "Python"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ranked) != 1 || ranked[0].Title != "From repository" {
		t.Fatalf("cache miss must fall back to the repository, got %v", ranked)
	}
	if repo.listActiveCalls != 1 {
		t.Errorf("expected exactly one repository read, got %d", repo.listActiveCalls)
	}
}
