package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fibra/internal/shared/errors"
)

// ErrorBody is the error shape every portal endpoint returns: a single
// user-facing message field. Clients parse exactly this on non-2xx responses.
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Message: appErr.Message})
		return
	}

	// For non-AppError, do not expose internal error details
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: "Error en la respuesta del servidor"})
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
