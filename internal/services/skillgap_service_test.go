package services

import (
	"context"
	"sort"
	"testing"

	"github.com/CareerPath-2025/recommendation-service/internal/catalog"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

func TestBuildSkillGapReport_RecognizedRole(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u1", "Computer Science Engineering", "Data Scientist",
		"Python", "SQL", "Statistics")

	report := BuildSkillGapReport(cat, scorer, profile)

	if !report.RoleRecognized {
		t.Error("Data Scientist is a known role")
	}
	if report.TargetRole != "Data Scientist" {
		t.Errorf("target role must echo the input, got %s", report.TargetRole)
	}
	if len(report.RequiredSkills) != 8 {
		t.Fatalf("expected 8 required skills, got %d", len(report.RequiredSkills))
	}
	// Python, SQL, Statistics satisfied: 5 of 8 missing, round(3/8*100) = 38
	if len(report.MissingSkills) != 5 {
		t.Errorf("expected 5 missing skills, got %d: %v", len(report.MissingSkills), report.MissingSkills)
	}
	if report.CurrentMatchPercentage != 38 {
		t.Errorf("expected match percentage 38, got %d", report.CurrentMatchPercentage)
	}
	if len(report.LearningPath) != len(report.MissingSkills) {
		t.Errorf("learning path must carry one item per missing skill")
	}
}

func TestBuildSkillGapReport_UnrecognizedRoleFallsBack(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u2", "Computer Science Engineering", "Blockchain Engineer",
		"JavaScript", "Git")

	report := BuildSkillGapReport(cat, scorer, profile)

	if report.RoleRecognized {
		t.Error("Blockchain Engineer is not a known role")
	}
	if report.TargetRole != "Blockchain Engineer" {
		t.Errorf("target role must echo the original input, got %s", report.TargetRole)
	}

	// Fallback uses the software developer baseline
	baseline, _ := cat.RequiredSkills("Software Developer")
	if len(report.RequiredSkills) != len(baseline) {
		t.Errorf("expected baseline requirements (%d skills), got %d",
			len(baseline), len(report.RequiredSkills))
	}
}

func TestBuildSkillGapReport_BlankRoleDefaults(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u3", "Information Technology", "", "Python")

	report := BuildSkillGapReport(cat, scorer, profile)

	if report.TargetRole != defaultTargetRole {
		t.Errorf("blank target role should default to %q, got %q", defaultTargetRole, report.TargetRole)
	}
	if !report.RoleRecognized {
		t.Error("the default role must be recognized")
	}
}

func TestBuildSkillGapReport_LearningPathDetails(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	// Software developer baseline minus everything: all 8 skills missing
	profile := profileWithSkills("u4", "Computer Science Engineering", "Software Developer")

	report := BuildSkillGapReport(cat, scorer, profile)

	if report.CurrentMatchPercentage != 0 {
		t.Errorf("no declared skills should score 0, got %d", report.CurrentMatchPercentage)
	}

	byName := make(map[string]models.LearningPathItem, len(report.LearningPath))
	for _, item := range report.LearningPath {
		byName[item.Skill] = item
	}

	js, ok := byName["JavaScript"]
	if !ok {
		t.Fatalf("JavaScript missing from learning path: %v", report.MissingSkills)
	}
	if js.Priority != models.PriorityHigh {
		t.Errorf("JavaScript is a core skill, expected High priority, got %s", js.Priority)
	}
	if js.EstimatedWeeks != 8 {
		t.Errorf("expected 8 weeks for JavaScript, got %d", js.EstimatedWeeks)
	}
	if len(js.Resources) != 2 {
		t.Errorf("expected 2 curated resources for JavaScript, got %d", len(js.Resources))
	}

	git, ok := byName["Git"]
	if !ok {
		t.Fatal("Git missing from learning path")
	}
	if git.EstimatedWeeks != 2 {
		t.Errorf("expected 2 weeks for Git, got %d", git.EstimatedWeeks)
	}
	if len(git.Resources) != 1 || git.Resources[0].URL != "#" {
		t.Errorf("uncurated skill should get the placeholder resource, got %v", git.Resources)
	}
	if git.Resources[0].Title != "Learn Git" {
		t.Errorf("placeholder must keep the catalog casing, got %q", git.Resources[0].Title)
	}

	nodeJS, ok := byName["Node.js"]
	if !ok {
		t.Fatal("Node.js missing from learning path")
	}
	if nodeJS.Priority != models.PriorityMedium {
		t.Errorf("Node.js is not a core skill, expected Medium, got %s", nodeJS.Priority)
	}
}

func TestBuildSkillGapReport_MissingSkillsKeepRequirementOrder(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u5", "Computer Science Engineering", "Software Developer",
		"React", "Git")

	report := BuildSkillGapReport(cat, scorer, profile)

	// Baseline order: JavaScript, Python, React, Node.js, Git, SQL, Data Structures, Algorithms
	want := []string{"JavaScript", "Python", "Node.js", "SQL", "Data Structures", "Algorithms"}
	if len(report.MissingSkills) != len(want) {
		t.Fatalf("expected %d missing skills, got %v", len(want), report.MissingSkills)
	}
	for i, skill := range want {
		if report.MissingSkills[i] != skill {
			t.Errorf("position %d: expected %s, got %s", i, skill, report.MissingSkills[i])
		}
	}
}

func TestBuildSkillGapReport_MissingSubsetOfRequired(t *testing.T) {
	cat := catalog.New()
	scorer := matching.NewScorer(nil)

	profile := profileWithSkills("u7", "Computer Science Engineering", "Data Scientist")

	report := BuildSkillGapReport(cat, scorer, profile)

	required := make(map[string]bool, len(report.RequiredSkills))
	for _, skill := range report.RequiredSkills {
		required[skill] = true
	}
	for _, skill := range report.MissingSkills {
		if !required[skill] {
			t.Errorf("missing skill %q is not literally an element of required %v",
				skill, report.RequiredSkills)
		}
	}
	for i, item := range report.LearningPath {
		if item.Skill != report.MissingSkills[i] {
			t.Errorf("learning path item %d names %q, want %q", i, item.Skill, report.MissingSkills[i])
		}
	}
}

func TestSkillGapService_AnalyzePersistsReport(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSkillGapService(repo, nil, testLogger(), catalog.New(), matching.NewScorer(nil))

	profile := profileWithSkills("u6", "Computer Science Engineering", "Frontend Developer",
		"HTML", "CSS", "JavaScript")

	report, err := svc.Analyze(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.upsertedGaps) != 1 {
		t.Fatalf("expected one persisted skill gap, got %d", len(repo.upsertedGaps))
	}
	stored := repo.upsertedGaps[0]
	if stored.TargetRole != "Frontend Developer" {
		t.Errorf("stored target role %s", stored.TargetRole)
	}
	if stored.CurrentMatchPercentage != report.CurrentMatchPercentage {
		t.Errorf("stored percentage %d does not match report %d",
			stored.CurrentMatchPercentage, report.CurrentMatchPercentage)
	}

	// Rerun replaces, not duplicates
	if _, err := svc.Analyze(context.Background(), profile); err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if len(repo.upsertedGaps) != 1 {
		t.Errorf("rerun duplicated the report: %d rows", len(repo.upsertedGaps))
	}
}

func TestSkillGapService_RolesListsCatalogRoles(t *testing.T) {
	cat := catalog.New()
	svc := NewSkillGapService(newFakeRepo(), nil, testLogger(), cat, matching.NewScorer(nil))

	roles := svc.Roles()

	if len(roles) == 0 {
		t.Fatal("expected the built-in roles")
	}
	if !sort.StringsAreSorted(roles) {
		t.Errorf("roles must be sorted, got %v", roles)
	}

	listed := make(map[string]bool, len(roles))
	for _, role := range roles {
		listed[role] = true
	}
	for _, want := range []string{"software developer", "data scientist"} {
		if !listed[want] {
			t.Errorf("expected %q in the role list, got %v", want, roles)
		}
	}

	// Every listed role must resolve without the baseline fallback
	for _, role := range roles {
		if _, recognized := cat.RequiredSkills(role); !recognized {
			t.Errorf("listed role %q is not recognized by the catalog", role)
		}
	}
}
