package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/services"
	"github.com/CareerPath-2025/recommendation-service/internal/utils"
	"github.com/CareerPath-2025/recommendation-service/internal/validator"
)

// maxImportFileSize caps uploaded spreadsheets at 10 MiB.
const maxImportFileSize = 10 << 20

type OpportunityHandler struct {
	BaseHandler
	service       services.OpportunityService
	importService services.OpportunityImportService
	validator     *validator.Validator
}

func NewOpportunityHandler(service services.OpportunityService, importService services.OpportunityImportService, v *validator.Validator, logger utils.Logger) *OpportunityHandler {
	return &OpportunityHandler{
		BaseHandler:   NewBaseHandler(logger),
		service:       service,
		importService: importService,
		validator:     v,
	}
}

// CreateOpportunity creates a single opportunity posting
// @Summary Create opportunity
// @Description Create a new internship opportunity posting
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body models.OpportunityCreateRequest true "Opportunity data"
// @Success 201 {object} models.Opportunity
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /opportunities [post]
func (h *OpportunityHandler) CreateOpportunity(c *gin.Context) {
	h.LogRequest(c, "Creating opportunity")

	var req models.OpportunityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid request body",
			Details:   err.Error(),
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	opp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, opp)
}

// ListOpportunities lists opportunity postings
// @Summary List opportunities
// @Description Get a paginated list of opportunity postings
// @Tags opportunities
// @Accept json
// @Produce json
// @Param page query int false "Page number, zero-based (default: 0)"
// @Param size query int false "Page size (default: 20, max: 100)"
// @Param active_only query bool false "Only active postings"
// @Param search query string false "Search in title or company"
// @Param sort_by query string false "Sort column (posted_at, created_at, title, company)"
// @Param sort_dir query string false "Sort direction (asc, desc)"
// @Param match query bool false "Annotate each posting with the caller's match score"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /opportunities [get]
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	h.LogRequest(c, "Listing opportunities")

	params := models.ListOpportunitiesParams{
		Page:       parseIntQuery(c, "page", 0),
		Size:       parseIntQuery(c, "size", 20),
		ActiveOnly: c.DefaultQuery("active_only", "false") == "true",
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortDir:    c.Query("sort_dir"),
	}

	if c.Query("match") == "true" {
		if userID, err := GetUserIDFromContext(c); err == nil {
			params.MatchForUser = userID
		}
	}

	response, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOpportunity retrieves one posting by ID
// @Summary Get opportunity
// @Description Get one opportunity posting by ID
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} models.Opportunity
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid opportunity ID",
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.LogRequest(c, "Getting opportunity", "id", id)

	opp, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opp)
}

// UpdateOpportunityStatus activates or deactivates a posting
// @Summary Update opportunity status
// @Description Activate or deactivate an opportunity posting
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param request body object{is_active=bool} true "Status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /opportunities/{id}/status [put]
func (h *OpportunityHandler) UpdateOpportunityStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid opportunity ID",
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid request body",
			Details:   err.Error(),
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.LogRequest(c, "Updating opportunity status", "id", id, "is_active", *req.IsActive)

	if err := h.service.SetActive(c.Request.Context(), uint(id), *req.IsActive); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message:   "Opportunity status updated",
		Timestamp: time.Now().UTC(),
	})
}

// ImportOpportunities imports postings from an uploaded xlsx workbook
// @Summary Import opportunities
// @Description Bulk import opportunity postings from an xlsx spreadsheet
// @Tags opportunities
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Param source formData string false "Batch source label"
// @Success 200 {object} services.ImportResult
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /opportunities/import [post]
func (h *OpportunityHandler) ImportOpportunities(c *gin.Context) {
	h.LogRequest(c, "Importing opportunities")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "Upload a workbook in the 'file' form field",
			Details:   err.Error(),
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	if fileHeader.Size > maxImportFileSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "File exceeds the 10MB import limit",
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	source := c.DefaultPostForm("source", fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		h.LogError(c, err, "Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "internal_error",
			Message:   "Failed to read uploaded file",
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportXLSX(c.Request.Context(), file, source)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ===== HELPER METHODS =====

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}
