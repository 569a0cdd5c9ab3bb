package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/events"
	"github.com/CareerPath-2025/recommendation-service/internal/validator"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func newImportService(repo *fakeRepo, publisher events.EventPublisher) OpportunityImportService {
	return NewOpportunityImportService(repo, nil, testLogger(), validator.New(), publisher, cache.NewCacheManager(nil))
}

func TestImportXLSX_ImportsValidRows(t *testing.T) {
	repo := newFakeRepo()
	publisher := events.NewMockEventPublisher(testLogger())
	svc := newImportService(repo, publisher)

	buf := buildWorkbook(t, [][]string{
		{"title", "company", "location", "stipend", "duration", "apply_url", "description", "skills_required"},
		{"Backend Intern", "Acme", "Remote", "1000 USD", "3 months", "https://acme.example/jobs/1", "Work on APIs", "Python, Django, SQL"},
		{"Frontend Intern", "Beta", "", "", "", "", "", "React, TypeScript"},
	})

	result, err := svc.ImportXLSX(context.Background(), buf, "campus-drive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("expected 2 imported / 0 skipped, got %d / %d", result.Imported, result.Skipped)
	}
	if len(repo.createdBatch) != 2 {
		t.Fatalf("expected 2 rows inserted, got %d", len(repo.createdBatch))
	}

	first := repo.createdBatch[0]
	if first.Title != "Backend Intern" || first.Company != "Acme" {
		t.Errorf("unexpected first row: %s at %s", first.Title, first.Company)
	}
	if len(first.SkillsRequired) != 3 || first.SkillsRequired[1] != "Django" {
		t.Errorf("unexpected skills: %v", first.SkillsRequired)
	}
	if !first.IsActive {
		t.Error("imported postings start active")
	}
	if first.Source == nil || *first.Source != "campus-drive" {
		t.Error("imported postings must carry the batch source")
	}

	second := repo.createdBatch[1]
	if second.Location != nil {
		t.Error("blank cells map to nil, not empty strings")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventOpportunitiesImported {
		t.Fatalf("expected one import event, got %v", published)
	}
	data := published[0].Data.(events.OpportunitiesImportedEvent)
	if data.Source != "campus-drive" || data.Imported != 2 {
		t.Errorf("unexpected event payload: %+v", data)
	}
}

func TestImportXLSX_SkipsInvalidRows(t *testing.T) {
	repo := newFakeRepo()
	publisher := events.NewMockEventPublisher(testLogger())
	svc := newImportService(repo, publisher)

	buf := buildWorkbook(t, [][]string{
		{"title", "company", "skills_required"},
		{"", "Acme", "Python"},        // missing title
		{"Intern", "", "Python"},      // missing company
		{"Intern", "Acme", ""},        // no skills
		{"Valid Intern", "Acme", "Go"},
	})

	result, err := svc.ImportXLSX(context.Background(), buf, "scraper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Imported != 1 {
		t.Errorf("expected 1 imported, got %d", result.Imported)
	}
	if result.Skipped != 3 {
		t.Errorf("expected 3 skipped, got %d", result.Skipped)
	}
	if len(result.RowErrors) != 3 {
		t.Errorf("expected 3 row errors, got %v", result.RowErrors)
	}
}

func TestImportXLSX_MissingRequiredColumn(t *testing.T) {
	repo := newFakeRepo()
	svc := newImportService(repo, events.NewMockEventPublisher(testLogger()))

	buf := buildWorkbook(t, [][]string{
		{"title", "location"},
		{"Intern", "Remote"},
	})

	if _, err := svc.ImportXLSX(context.Background(), buf, "bad"); err == nil {
		t.Error("expected an error for missing company column")
	}
}

func TestMapImportHeader(t *testing.T) {
	columns, err := mapImportHeader([]string{" Title ", "COMPANY", "skills_required", "extra"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if columns["title"] != 0 || columns["company"] != 1 || columns["skills_required"] != 2 {
		t.Errorf("unexpected column map: %v", columns)
	}
	if _, ok := columns["extra"]; ok {
		t.Error("unknown columns must be ignored")
	}
}

func TestSplitSkillList(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want int
	}{
		{name: "simple", cell: "Python, SQL", want: 2},
		{name: "blanks dropped", cell: "Python, , SQL,", want: 2},
		{name: "empty", cell: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSkillList(tt.cell)
			if len(got) != tt.want {
				t.Errorf("expected %d skills, got %v", tt.want, got)
			}
		})
	}
}
