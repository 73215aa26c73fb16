package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The error body format follows the API contract: a single "detail" member
// that is either a fixed message string or a field -> message map. Credential
// failures must produce byte-identical bodies regardless of cause, so no
// per-request data (request id, timestamps) is ever included here.

// Detail writes an error with a fixed message.
func Detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// ValidationError writes a 422 with field-level detail.
func ValidationError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
}

// InternalError writes the opaque 500 used for store/scoring failures.
func InternalError(c *gin.Context) {
	Detail(c, http.StatusInternalServerError, "Internal server error. Please try again later.")
}

// AbortDetail writes an error and aborts the middleware chain.
func AbortDetail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}
