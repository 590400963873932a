package response

import (
	"github.com/gin-gonic/gin"
)

// The REST contract uses flat JSON bodies: successes carry `message` plus
// resource fields, failures carry `message` and, for validation errors, a
// field → detail map under `errors`. Request IDs travel in the X-Request-ID
// header, not the body.

// Success sends a successful JSON response with the given status and body.
func Success(c *gin.Context, statusCode int, body gin.H) {
	c.JSON(statusCode, body)
}

// Fail sends an error response carrying the code's client-facing message.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, gin.H{"message": GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, gin.H{"message": GetMessage(code), "errors": fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": GetMessage(code)})
}
