package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope used by the admin and auth APIs.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondSuccess writes the public intake shape: {"success":true,"data":...}.
// The public booking and contact endpoints keep this flat contract.
func RespondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// RespondError writes the public intake error shape: {"error":"..."}.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
