package models

import (
	"time"

	"gorm.io/datatypes"
)

type RecommendationType string

const (
	RecommendInternships RecommendationType = "internships"
	RecommendProjects    RecommendationType = "projects"
	RecommendSkills      RecommendationType = "skills"
)

type LearningPriority string

const (
	PriorityHigh   LearningPriority = "High"
	PriorityMedium LearningPriority = "Medium"
	PriorityLow    LearningPriority = "Low"
)

// LearningResource points at external study material for one skill.
type LearningResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LearningPathItem is one remediation step. The skill gap report carries
// exactly one item per missing skill, in required-skill order.
type LearningPathItem struct {
	Skill          string             `json:"skill"`
	Priority       LearningPriority   `json:"priority"`
	EstimatedWeeks int                `json:"estimated_weeks"`
	Resources      []LearningResource `json:"resources"`
}

// ProjectRecommendation is a persisted top-N project suggestion.
// Upserts are keyed on (user_id, title) so re-running generation for an
// unchanged profile overwrites instead of duplicating.
type ProjectRecommendation struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"not null;size:255;index;uniqueIndex:idx_user_project_title"`
	Title  string `json:"title" gorm:"not null;size:200;uniqueIndex:idx_user_project_title"`

	Description       string                      `json:"description" gorm:"type:text"`
	Difficulty        string                      `json:"difficulty" gorm:"size:50"`
	EstimatedDuration string                      `json:"estimated_duration" gorm:"size:100"`
	TechStack         datatypes.JSONSlice[string] `json:"tech_stack" gorm:"type:jsonb"`
	LearningOutcomes  datatypes.JSONSlice[string] `json:"learning_outcomes" gorm:"type:jsonb"`
	ImpactScore       int                         `json:"impact_score"`

	SkillMatchScore int                         `json:"skill_match_score" gorm:"not null"`
	MatchingSkills  datatypes.JSONSlice[string] `json:"matching_skills" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillGap is the persisted analysis for one (user, target role) pair.
// Upserts are keyed on (user_id, target_role): one logical report per pair.
type SkillGap struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	UserID     string `json:"user_id" gorm:"not null;size:255;index;uniqueIndex:idx_user_target_role"`
	TargetRole string `json:"target_role" gorm:"not null;size:100;uniqueIndex:idx_user_target_role"`

	MissingSkills          datatypes.JSONSlice[string]             `json:"missing_skills" gorm:"type:jsonb"`
	CurrentMatchPercentage int                                     `json:"current_match_percentage" gorm:"not null"`
	LearningPath           datatypes.JSONType[[]LearningPathItem]  `json:"learning_path" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProjectRecommendation) TableName() string {
	return "project_recommendations"
}

func (SkillGap) TableName() string {
	return "skill_gaps"
}
