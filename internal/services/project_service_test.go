package services

import (
	"context"
	"testing"

	"github.com/CareerPath-2025/recommendation-service/internal/catalog"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
)

func TestBuildProjectRecommendations_FiltersByBranch(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u1", "Computer Science Engineering", "", "React", "Node.js", "MongoDB")

	recs := BuildProjectRecommendations(cat, scorer, profile)

	if len(recs) == 0 {
		t.Fatal("expected recommendations for an eligible branch")
	}
	if len(recs) > maxProjectResults {
		t.Errorf("expected at most %d recommendations, got %d", maxProjectResults, len(recs))
	}
	for _, rec := range recs {
		if rec.UserID != "u1" {
			t.Errorf("recommendation not attributed to user: %s", rec.UserID)
		}
	}
}

func TestBuildProjectRecommendations_IneligibleBranchIsEmpty(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u2", "Mechanical Engineering", "", "Python", "SQL")

	recs := BuildProjectRecommendations(cat, scorer, profile)

	if len(recs) != 0 {
		t.Errorf("expected no recommendations for Mechanical Engineering, got %d", len(recs))
	}
}

func TestBuildProjectRecommendations_BranchMatchIsCaseSensitive(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u3", "computer science engineering", "", "React")

	recs := BuildProjectRecommendations(cat, scorer, profile)

	if len(recs) != 0 {
		t.Errorf("lowercase branch must not match curated branch names, got %d recommendations", len(recs))
	}
}

func TestBuildProjectRecommendations_OrderedByScore(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	// Heavy Python profile favors the resume analyzer template
	profile := profileWithSkills("u4", "Computer Science Engineering", "",
		"Python", "Flask", "React", "PostgreSQL")

	recs := BuildProjectRecommendations(cat, scorer, profile)

	if len(recs) < 2 {
		t.Fatalf("expected at least 2 recommendations, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].SkillMatchScore > recs[i-1].SkillMatchScore {
			t.Errorf("recommendations out of order at %d: %d > %d",
				i, recs[i].SkillMatchScore, recs[i-1].SkillMatchScore)
		}
	}
	if recs[0].Title != "AI-Powered Resume Analyzer" {
		t.Errorf("expected resume analyzer first, got %s", recs[0].Title)
	}
}

func TestProjectService_RecommendPersistsAndIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProjectService(repo, nil, testLogger(), catalog.New(), matching.NewScorer(nil))

	profile := profileWithSkills("u5", "Computer Science Engineering", "", "React", "Node.js")

	first, err := svc.Recommend(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Recommend(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}

	if len(first) != len(second) {
		t.Errorf("rerun changed result count: %d vs %d", len(first), len(second))
	}
	if len(repo.upsertedProjects) != len(first) {
		t.Errorf("rerun duplicated rows: %d stored for %d recommendations",
			len(repo.upsertedProjects), len(first))
	}
	for i := range first {
		if first[i].Title != second[i].Title {
			t.Errorf("rerun changed order at %d: %s vs %s", i, first[i].Title, second[i].Title)
		}
	}
}

func TestProjectService_EmptyBranchResult(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProjectService(repo, nil, testLogger(), catalog.New(), matching.NewScorer(nil))

	profile := profileWithSkills("u6", "Mechanical Engineering", "", "Python")

	recs, err := svc.Recommend(context.Background(), profile)
	if err != nil {
		t.Fatalf("ineligible branch must not be an error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %d", len(recs))
	}
	if len(repo.upsertedProjects) != 0 {
		t.Errorf("nothing should be persisted for an empty result, stored %d", len(repo.upsertedProjects))
	}
}
