package models

import (
	"time"

	"gorm.io/gorm"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Profile holds the onboarding data the engine reads. It is owned by the
// onboarding flow; the recommendation engine never mutates it.
type Profile struct {
	ID             string `json:"id" gorm:"primaryKey;size:255"` // same as User.ID
	Branch         string `json:"branch" gorm:"not null;size:100;index" validate:"required,max=100"`
	TargetRole     string `json:"target_role" gorm:"size:100" validate:"omitempty,max=100"`
	GraduationYear *int   `json:"graduation_year"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Skills []UserSkill `json:"skills" gorm:"foreignKey:ProfileID"`
	User   User        `json:"-" gorm:"foreignKey:ID"`
}

// UserSkill is one declared skill. Names are unique per profile.
type UserSkill struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	ProfileID string     `json:"profile_id" gorm:"not null;size:255;index;uniqueIndex:idx_profile_skill_name"`
	Name      string     `json:"name" gorm:"not null;size:100;uniqueIndex:idx_profile_skill_name" validate:"required,max=100"`
	Level     SkillLevel `json:"level" gorm:"default:Beginner" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	YearsExp  uint       `json:"years_experience" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (UserSkill) TableName() string {
	return "user_skills"
}

// SkillNames returns the declared skill names in profile order.
func (p *Profile) SkillNames() []string {
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
	}
	return names
}
