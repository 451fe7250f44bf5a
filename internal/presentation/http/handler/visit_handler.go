package handler

import (
	"strconv"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/dto/response"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// VisitHandler handles visit-related HTTP requests
type VisitHandler struct {
	visitService *service.VisitService
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService *service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// List handles GET /visits
func (h *VisitHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	result, err := h.visitService.ListVisits(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visits retrieved successfully", result)
}

// Calendar handles GET /visits/calendar?year=&month=, returning the month's
// visits bucketed by day plus the grid layout metadata.
func (h *VisitHandler) Calendar(c *gin.Context) {
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.Error(c, apperror.NewFieldError("year", "year must be a number"))
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		response.Error(c, apperror.NewFieldError("month", "month must be a number"))
		return
	}

	schedule, err := h.visitService.GetMonthSchedule(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Calendar retrieved successfully", schedule)
}

// Get handles GET /visits/:id
func (h *VisitHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid visit ID"))
		return
	}

	visit, err := h.visitService.GetVisit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visit retrieved successfully", visit)
}

// Create handles POST /visits
func (h *VisitHandler) Create(c *gin.Context) {
	var input service.CreateVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	visit, err := h.visitService.CreateVisit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Visit scheduled successfully", visit)
}

// Update handles PATCH /visits/:id
func (h *VisitHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid visit ID"))
		return
	}

	var input service.UpdateVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	visit, err := h.visitService.UpdateVisit(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visit updated successfully", visit)
}

// Delete handles DELETE /visits/:id
func (h *VisitHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid visit ID"))
		return
	}

	if err := h.visitService.DeleteVisit(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visit deleted successfully", nil)
}
