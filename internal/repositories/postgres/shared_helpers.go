package postgres

import (
	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

// SharedHelpers contains common database query helpers
type SharedHelpers struct {
	db *gorm.DB
}

func NewSharedHelpers(db *gorm.DB) *SharedHelpers {
	return &SharedHelpers{db: db}
}

// ApplyOpportunityFilters applies common filters to opportunity queries
func (h *SharedHelpers) ApplyOpportunityFilters(query *gorm.DB, filters repositories.OpportunityFilters) *gorm.DB {
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.Company != nil {
		query = query.Where("company = ?", *filters.Company)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR company ILIKE ?", like, like)
	}
	if filters.PostedFrom != nil {
		query = query.Where("posted_at >= ?", *filters.PostedFrom)
	}
	if filters.PostedTo != nil {
		query = query.Where("posted_at <= ?", *filters.PostedTo)
	}
	return query
}

// ApplyPaginationAndSort applies pagination and sorting with SQL injection protection
func (h *SharedHelpers) ApplyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, limit, offset int) *gorm.DB {
	// Whitelist allowed sort columns
	allowedSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"posted_at":  true,
		"id":         true,
		"title":      true,
		"company":    true,
	}

	if sortBy == "" || !allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "ASC" {
		sortOrder = "DESC"
	} else {
		sortOrder = "ASC"
	}

	query = query.Order(sortBy + " " + sortOrder)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}
