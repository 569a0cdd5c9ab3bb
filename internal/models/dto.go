package models

import (
	"time"
)

type GenerateRecommendationsRequest struct {
	UserID string             `json:"user_id" validate:"omitempty,max=255"`
	Type   RecommendationType `json:"type" validate:"required,oneof=internships projects skills"`
}

type OpportunityCreateRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Company        string     `json:"company" validate:"required,min=1,max=200"`
	Location       *string    `json:"location" validate:"omitempty,max=200"`
	Stipend        *string    `json:"stipend" validate:"omitempty,max=100"`
	Duration       *string    `json:"duration" validate:"omitempty,max=100"`
	ApplyURL       *string    `json:"apply_url" validate:"omitempty,url,max=500"`
	Description    *string    `json:"description" validate:"omitempty,max=5000"`
	SkillsRequired []string   `json:"skills_required" validate:"required,min=1,max=30,dive,min=1,max=100"`
	PostedAt       *time.Time `json:"posted_at"`
}

// ===== PAGINATION & FILTERING =====

type ListOpportunitiesParams struct {
	Page       int    `json:"page" validate:"min=0"`
	Size       int    `json:"size" validate:"min=1,max=100"`
	ActiveOnly bool   `json:"active_only"`
	Search     string `json:"search"`
	SortBy     string `json:"sort_by"`
	SortDir    string `json:"sort_dir" validate:"omitempty,oneof=asc desc"`

	// MatchForUser annotates each listed posting with the match score for
	// this user's profile. Set from the auth context, never from the body.
	MatchForUser string `json:"-"`
}

type PaginatedResponse struct {
	Content          interface{} `json:"content"`
	TotalElements    int64       `json:"total_elements"`
	TotalPages       int         `json:"total_pages"`
	Size             int         `json:"size"`
	Page             int         `json:"page"`
	First            bool        `json:"first"`
	Last             bool        `json:"last"`
	NumberOfElements int         `json:"number_of_elements"`
	Empty            bool        `json:"empty"`
}

// ===== VALIDATION RESPONSES =====

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
	Code    string `json:"code"`
}

// ===== ERROR RESPONSES =====

type ErrorResponse struct {
	Error            string                    `json:"error"`
	Message          string                    `json:"message"`
	Code             string                    `json:"code"`
	Details          interface{}               `json:"details,omitempty"`
	Timestamp        time.Time                 `json:"timestamp"`
	Path             string                    `json:"path"`
	ValidationErrors []ValidationErrorResponse `json:"validation_errors,omitempty"`
}

type SuccessResponse struct {
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
