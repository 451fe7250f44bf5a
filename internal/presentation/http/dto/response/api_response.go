package response

import (
	"net/http"

	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 response
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// OK sends a 200 response
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// NoContent sends a 204 response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response from an AppError or a generic error
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)

	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  errorsOrNil(appErr),
	})
}

// AbortWithError sends an error response and stops the handler chain
func AbortWithError(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)

	c.AbortWithStatusJSON(appErr.Code, APIResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  errorsOrNil(appErr),
	})
}

// ValidationError sends a 422 response for binding failures
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  err.Error(),
	})
}

func errorsOrNil(appErr *apperror.AppError) interface{} {
	if len(appErr.Errors) == 0 {
		return nil
	}
	return appErr.Errors
}
