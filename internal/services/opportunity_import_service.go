package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/events"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
	"github.com/CareerPath-2025/recommendation-service/internal/validator"
)

// Expected header names in the import sheet. Matching is case-insensitive.
var importColumns = []string{
	"title", "company", "location", "stipend",
	"duration", "apply_url", "description", "skills_required",
}

type opportunityImportService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	cache     *cache.CacheManager
}

func NewOpportunityImportService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, cacheManager *cache.CacheManager) OpportunityImportService {
	return &opportunityImportService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: v,
		publisher: publisher,
		cache:     cacheManager,
	}
}

// ImportXLSX reads the first sheet of an xlsx workbook, skips rows that
// fail validation and batch-inserts the rest. Partial success is normal:
// row errors are reported, not fatal.
func (s *opportunityImportService) ImportXLSX(ctx context.Context, r io.Reader, source string) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open workbook: %v", ErrInvalidInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: sheet has no data rows", ErrInvalidInput)
	}

	columns, err := mapImportHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result := &ImportResult{Source: source, TotalRows: len(rows) - 1}
	opportunities := make([]*models.Opportunity, 0, len(rows)-1)

	for i, row := range rows[1:] {
		opp, err := s.parseImportRow(columns, row, source)
		if err != nil {
			result.Skipped++
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		opportunities = append(opportunities, opp)
	}

	if len(opportunities) > 0 {
		if err := s.repo.Opportunity().CreateBatch(ctx, nil, opportunities); err != nil {
			return nil, fmt.Errorf("failed to insert imported opportunities: %w", err)
		}
	}
	result.Imported = len(opportunities)
	result.CompletedAt = time.Now().UTC()

	cache.InvalidateOpportunityCache(ctx, s.cache)

	event := events.NewEvent(events.EventOpportunitiesImported, events.OpportunitiesImportedEvent{
		Source:   source,
		Imported: result.Imported,
		Skipped:  result.Skipped,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish import event", "source", source, "error", err)
	}

	s.logger.Info("Opportunity import completed",
		"source", source,
		"imported", result.Imported,
		"skipped", result.Skipped)

	return result, nil
}

// mapImportHeader resolves column positions from the header row.
// title, company and skills_required are mandatory columns.
func mapImportHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(importColumns))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, want := range importColumns {
			if name == want {
				columns[want] = i
			}
		}
	}

	for _, required := range []string{"title", "company", "skills_required"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return columns, nil
}

func (s *opportunityImportService) parseImportRow(columns map[string]int, row []string, source string) (*models.Opportunity, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	skills := splitSkillList(cell("skills_required"))

	req := &models.OpportunityCreateRequest{
		Title:          cell("title"),
		Company:        cell("company"),
		Location:       optionalCell(cell("location")),
		Stipend:        optionalCell(cell("stipend")),
		Duration:       optionalCell(cell("duration")),
		ApplyURL:       optionalCell(cell("apply_url")),
		Description:    optionalCell(cell("description")),
		SkillsRequired: skills,
	}

	if verrs := s.validator.GetBusinessValidator().ValidateOpportunityCreate(req); len(verrs) > 0 {
		return nil, verrs
	}

	return &models.Opportunity{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Stipend:        req.Stipend,
		Duration:       req.Duration,
		ApplyURL:       req.ApplyURL,
		Description:    req.Description,
		SkillsRequired: datatypes.JSONSlice[string](skills),
		IsActive:       true,
		Source:         &source,
	}, nil
}

// splitSkillList parses the comma-separated skills cell, dropping blanks.
func splitSkillList(cell string) []string {
	parts := strings.Split(cell, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func optionalCell(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
