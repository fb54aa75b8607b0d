package api

import (
	"net/http"

	"arena45/backend/internal/domain"
	"arena45/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message,omitempty"`
	Data       any                     `json:"data,omitempty"`
	Count      *int                    `json:"count,omitempty"`
	Pagination *domain.Pagination      `json:"pagination,omitempty"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func respondPage(c *gin.Context, data any, p domain.Pagination) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Pagination: &p})
}

func respondList(c *gin.Context, data any, n int) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &n})
}

// abortWithError writes a failure envelope and stops the handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{Success: false, Message: message})
}
