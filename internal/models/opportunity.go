package models

import (
	"time"

	"gorm.io/datatypes"
)

// Opportunity is an internship-style posting produced by the ingestion
// pipeline. The engine only reads these rows; match annotations live on
// copies, never on the stored record.
type Opportunity struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Title    string  `json:"title" gorm:"not null;size:200;index" validate:"required,max=200"`
	Company  string  `json:"company" gorm:"not null;size:200" validate:"required,max=200"`
	Location *string `json:"location" gorm:"size:200"`
	Stipend  *string `json:"stipend" gorm:"size:100"`
	Duration *string `json:"duration" gorm:"size:100"`
	ApplyURL *string `json:"apply_url" gorm:"size:500"`

	Description *string `json:"description" gorm:"type:text"`

	// Required skills in posting order, stored as JSONB
	SkillsRequired datatypes.JSONSlice[string] `json:"skills_required" gorm:"type:jsonb"`

	IsActive bool       `json:"is_active" gorm:"default:true;index"`
	PostedAt *time.Time `json:"posted_at"`
	Source   *string    `json:"source" gorm:"size:100"` // scraper/import batch identifier

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed fields (not stored)
	MatchScore     *int     `json:"match_score,omitempty" gorm:"-"`
	MatchingSkills []string `json:"matching_skills,omitempty" gorm:"-"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}
