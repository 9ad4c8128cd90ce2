package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the envelope with code as both the HTTP status and the
// status_code field.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, APIResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
