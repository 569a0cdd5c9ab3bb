package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

func TestNew_Defaults(t *testing.T) {
	c := New()

	if got := len(c.Templates()); got != 4 {
		t.Errorf("expected 4 built-in project templates, got %d", got)
	}

	skills, recognized := c.RequiredSkills("Data Scientist")
	if !recognized {
		t.Error("data scientist should be a known role")
	}
	if len(skills) != 8 {
		t.Errorf("expected 8 required skills for data scientist, got %d", len(skills))
	}
}

func TestCatalog_RequiredSkillsFallback(t *testing.T) {
	c := New()

	got, recognized := c.RequiredSkills("Blockchain Engineer")
	if recognized {
		t.Error("blockchain engineer should be unrecognized")
	}

	baseline, _ := c.RequiredSkills("Software Developer")
	if len(got) != len(baseline) {
		t.Fatalf("fallback returned %d skills, baseline has %d", len(got), len(baseline))
	}
	for i := range baseline {
		if got[i] != baseline[i] {
			t.Errorf("fallback[%d] = %q, want %q", i, got[i], baseline[i])
		}
	}
}

func TestCatalog_Priority(t *testing.T) {
	c := New()

	tests := []struct {
		skill string
		want  models.LearningPriority
	}{
		{skill: "JavaScript", want: models.PriorityHigh},
		{skill: "python", want: models.PriorityHigh},
		{skill: "Data Structures", want: models.PriorityHigh},
		{skill: "Docker", want: models.PriorityMedium},
		{skill: "Kubernetes", want: models.PriorityMedium},
	}

	for _, tt := range tests {
		if got := c.Priority(tt.skill); got != tt.want {
			t.Errorf("Priority(%q) = %v, want %v", tt.skill, got, tt.want)
		}
	}
}

func TestCatalog_EstimatedWeeks(t *testing.T) {
	c := New()

	if got := c.EstimatedWeeks("JavaScript"); got != 8 {
		t.Errorf("EstimatedWeeks(JavaScript) = %d, want 8", got)
	}
	if got := c.EstimatedWeeks("Git"); got != 2 {
		t.Errorf("EstimatedWeeks(Git) = %d, want 2", got)
	}
	if got := c.EstimatedWeeks("Some Obscure Skill"); got != 4 {
		t.Errorf("EstimatedWeeks default = %d, want 4", got)
	}
}

func TestCatalog_Resources(t *testing.T) {
	c := New()

	res := c.Resources("React")
	if len(res) != 2 {
		t.Fatalf("expected 2 curated React resources, got %d", len(res))
	}

	placeholder := c.Resources("Kubernetes")
	if len(placeholder) != 1 {
		t.Fatalf("expected single placeholder resource, got %d", len(placeholder))
	}
	if placeholder[0].Title != "Learn Kubernetes" || placeholder[0].URL != "#" {
		t.Errorf("unexpected placeholder: %+v", placeholder[0])
	}
}

func TestCatalog_SuitableForBranch(t *testing.T) {
	tmpl := ProjectTemplate{SuitableFor: []string{"Computer Science Engineering", "Information Technology"}}

	if !tmpl.SuitableForBranch("Information Technology") {
		t.Error("exact branch should be eligible")
	}
	if tmpl.SuitableForBranch("information technology") {
		t.Error("branch eligibility is case-sensitive")
	}
	if tmpl.SuitableForBranch("Mechanical Engineering") {
		t.Error("unlisted branch should not be eligible")
	}
}

func TestCatalog_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	content := `
projects:
  - title: "Robotics Arm Controller"
    description: "Control loop for a 4-axis arm"
    difficulty: "Advanced"
    estimated_duration: "6 weeks"
    tech_stack: ["C++", "ROS"]
    learning_outcomes: ["Control theory"]
    impact_score: 80
    suitable_for: ["Mechanical Engineering"]
roles:
  embedded engineer: ["C", "C++", "RTOS"]
fallback_role: "embedded engineer"
learning_times:
  C: 10
default_weeks: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	c := New()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	tmpls := c.Templates()
	if len(tmpls) != 1 || tmpls[0].Title != "Robotics Arm Controller" {
		t.Errorf("projects not replaced by override: %+v", tmpls)
	}

	skills, recognized := c.RequiredSkills("Embedded Engineer")
	if !recognized || len(skills) != 3 {
		t.Errorf("override role lookup failed: recognized=%v skills=%v", recognized, skills)
	}

	if _, recognized := c.RequiredSkills("software developer"); recognized {
		t.Error("old roles should be replaced, not merged")
	}

	if got := c.EstimatedWeeks("C"); got != 10 {
		t.Errorf("EstimatedWeeks(C) = %d, want 10", got)
	}
	if got := c.EstimatedWeeks("Rust"); got != 5 {
		t.Errorf("override default weeks = %d, want 5", got)
	}
}

func TestCatalog_LoadFromFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "project without title",
			content: "projects:\n  - description: \"no title\"\n    tech_stack: [\"Go\"]\n",
		},
		{
			name:    "project without tech stack",
			content: "projects:\n  - title: \"Empty Stack\"\n",
		},
		{
			name:    "role with empty skill list",
			content: "roles:\n  ghost role: []\n",
		},
		{
			name:    "fallback role missing from roles",
			content: "roles:\n  some role: [\"Go\"]\nfallback_role: \"other role\"\n",
		},
		{
			name:    "malformed yaml",
			content: "projects: [unclosed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}
			if err := New().LoadFromFile(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestCatalog_LoadFromDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()

	good := "roles:\n  platform engineer: [\"Kubernetes\", \"Terraform\"]\n  software developer: [\"Go\"]\n"
	bad := "roles: [not-a-map\n"

	if err := os.WriteFile(filepath.Join(dir, "good.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.LoadFromDir(dir); err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}

	if _, recognized := c.RequiredSkills("Platform Engineer"); !recognized {
		t.Error("good file should have been loaded despite bad sibling")
	}
}
