package handler

import (
	"strconv"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/dto/response"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// List handles GET /properties with server-side search and filters
func (h *PropertyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	filter := repository.PropertyFilter{
		Search:       c.Query("search"),
		Status:       enum.PropertyStatus(c.Query("status")),
		PropertyType: enum.PropertyType(c.Query("property_type")),
	}

	result, err := h.propertyService.ListProperties(c.Request.Context(), params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Properties retrieved successfully", result)
}

// Get handles GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid property ID"))
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Property retrieved successfully", property)
}

// Create handles POST /properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var input service.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Property created successfully", property)
}

// Update handles PATCH /properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid property ID"))
		return
	}

	var input service.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Property updated successfully", property)
}

// Delete handles DELETE /properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid property ID"))
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Property deleted successfully", nil)
}
