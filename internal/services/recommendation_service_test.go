package services

import (
	"context"
	"errors"
	"testing"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/catalog"
	"github.com/CareerPath-2025/recommendation-service/internal/events"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

func newTestOrchestrator(repo *fakeRepo, publisher events.EventPublisher) RecommendationService {
	logger := testLogger()
	scorer := matching.NewScorer(nil)
	cat := catalog.New()
	cm := cache.NewCacheManager(nil)

	internship := NewInternshipService(repo, nil, logger, scorer, cm)
	project := NewProjectService(repo, nil, logger, cat, scorer)
	skillGap := NewSkillGapService(repo, nil, logger, cat, scorer)

	return NewRecommendationService(repo, nil, logger, internship, project, skillGap, publisher, cm)
}

func TestRecommendationService_GenerateProjects(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["u1"] = profileWithSkills("u1", "Computer Science Engineering", "", "React", "Node.js")
	publisher := events.NewMockEventPublisher(testLogger())

	svc := newTestOrchestrator(repo, publisher)

	resp, err := svc.Generate(context.Background(), "u1", models.RecommendProjects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Type != models.RecommendProjects {
		t.Errorf("unexpected type %s", resp.Type)
	}
	if len(resp.Projects) == 0 {
		t.Error("expected project recommendations")
	}
	if resp.Internships != nil || resp.SkillGap != nil {
		t.Error("only the requested payload should be populated")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	event := published[0]
	if event.Type != events.EventRecommendationGenerated {
		t.Errorf("unexpected event type %s", event.Type)
	}
	if event.Source != "recommendation-service" {
		t.Errorf("unexpected event source %s", event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("unexpected event version %s", event.Version)
	}

	data, ok := event.Data.(events.RecommendationGeneratedEvent)
	if !ok {
		t.Fatalf("unexpected event payload %T", event.Data)
	}
	if data.UserID != "u1" || data.RecommendationType != "projects" {
		t.Errorf("unexpected payload: %+v", data)
	}
	if data.ResultCount != len(resp.Projects) {
		t.Errorf("result count %d does not match %d projects", data.ResultCount, len(resp.Projects))
	}
}

func TestRecommendationService_GenerateSkills(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["u2"] = profileWithSkills("u2", "Information Technology", "Backend Developer", "Python", "Docker")
	publisher := events.NewMockEventPublisher(testLogger())

	svc := newTestOrchestrator(repo, publisher)

	resp, err := svc.Generate(context.Background(), "u2", models.RecommendSkills)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SkillGap == nil {
		t.Fatal("expected a skill gap report")
	}
	if resp.SkillGap.TargetRole != "Backend Developer" {
		t.Errorf("unexpected target role %s", resp.SkillGap.TargetRole)
	}
	if len(repo.upsertedGaps) != 1 {
		t.Errorf("expected the report to be persisted, got %d rows", len(repo.upsertedGaps))
	}
}

func TestRecommendationService_GenerateInternships(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["u3"] = profileWithSkills("u3", "Computer Science Engineering", "", "Python", "SQL")
	repo.opportunities = []*models.Opportunity{
		opportunity(1, "Backend Intern", "Python", "Django", "SQL"),
	}
	publisher := events.NewMockEventPublisher(testLogger())

	svc := newTestOrchestrator(repo, publisher)

	resp, err := svc.Generate(context.Background(), "u3", models.RecommendInternships)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Internships) != 1 {
		t.Fatalf("expected 1 internship, got %d", len(resp.Internships))
	}
	if *resp.Internships[0].MatchScore != 67 {
		t.Errorf("expected score 67, got %d", *resp.Internships[0].MatchScore)
	}
}

func TestRecommendationService_ProfileNotFound(t *testing.T) {
	repo := newFakeRepo()
	publisher := events.NewMockEventPublisher(testLogger())

	svc := newTestOrchestrator(repo, publisher)

	_, err := svc.Generate(context.Background(), "missing", models.RecommendProjects)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
	if len(publisher.GetPublishedEvents()) != 0 {
		t.Error("no event should be published on failure")
	}
}

func TestRecommendationService_UnknownType(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["u4"] = profileWithSkills("u4", "Computer Science Engineering", "", "Python")
	publisher := events.NewMockEventPublisher(testLogger())

	svc := newTestOrchestrator(repo, publisher)

	_, err := svc.Generate(context.Background(), "u4", models.RecommendationType("courses"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
