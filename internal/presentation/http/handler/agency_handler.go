package handler

import (
	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/dto/response"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// AgencyHandler handles agency and member management HTTP requests
type AgencyHandler struct {
	agencyService *service.AgencyService
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(agencyService *service.AgencyService) *AgencyHandler {
	return &AgencyHandler{agencyService: agencyService}
}

// Create handles POST /agencies. The caller must not belong to an agency yet.
func (h *AgencyHandler) Create(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated)
		return
	}

	var input service.CreateAgencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	agency, err := h.agencyService.CreateAgency(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Agency created successfully", agency)
}

// Get handles GET /agency
func (h *AgencyHandler) Get(c *gin.Context) {
	agencyID, ok := GetAgencyID(c)
	if !ok {
		response.Error(c, apperror.ErrNoAgencyAssigned)
		return
	}

	agency, err := h.agencyService.GetAgency(c.Request.Context(), agencyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Agency retrieved successfully", agency)
}

// Update handles PATCH /agency (admin only)
func (h *AgencyHandler) Update(c *gin.Context) {
	agencyID, ok := GetAgencyID(c)
	if !ok {
		response.Error(c, apperror.ErrNoAgencyAssigned)
		return
	}

	var input service.UpdateAgencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	agency, err := h.agencyService.UpdateAgency(c.Request.Context(), agencyID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Agency updated successfully", agency)
}

// ListMembers handles GET /agency/members
func (h *AgencyHandler) ListMembers(c *gin.Context) {
	members, err := h.agencyService.ListMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Members retrieved successfully", members)
}

// InviteMember handles POST /agency/members (admin only)
func (h *AgencyHandler) InviteMember(c *gin.Context) {
	agencyID, ok := GetAgencyID(c)
	if !ok {
		response.Error(c, apperror.ErrNoAgencyAssigned)
		return
	}

	var input service.InviteMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.agencyService.InviteMember(c.Request.Context(), agencyID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member invited successfully", result)
}

// SetMemberAdmin handles PATCH /agency/members/:id/role (admin only)
func (h *AgencyHandler) SetMemberAdmin(c *gin.Context) {
	agencyID, ok := GetAgencyID(c)
	if !ok {
		response.Error(c, apperror.ErrNoAgencyAssigned)
		return
	}
	callerID, ok := GetUserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated)
		return
	}

	memberID, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid member ID"))
		return
	}

	var input struct {
		Admin *bool `json:"admin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	member, err := h.agencyService.SetMemberAdmin(c.Request.Context(), agencyID, callerID, memberID, *input.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member role updated successfully", member)
}

// RemoveMember handles DELETE /agency/members/:id (admin only)
func (h *AgencyHandler) RemoveMember(c *gin.Context) {
	agencyID, ok := GetAgencyID(c)
	if !ok {
		response.Error(c, apperror.ErrNoAgencyAssigned)
		return
	}
	callerID, ok := GetUserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated)
		return
	}

	memberID, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid member ID"))
		return
	}

	if err := h.agencyService.RemoveMember(c.Request.Context(), agencyID, callerID, memberID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member removed successfully", nil)
}
