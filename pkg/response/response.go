package response

import (
	"github.com/gin-gonic/gin"
)

// errorBody is the normalized failure shape for every endpoint:
// {"error": <message>} with optional field details on validation failures.
// The legacy contract mixed "message" and "error" keys; this is the
// deliberate normalization.
type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error writes a JSON error body with the given status.
func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, errorBody{Error: message, Details: details})
}

// AbortError writes a JSON error body and aborts the handler chain.
// Intended for middleware.
func AbortError(c *gin.Context, status int, message string, details any) {
	c.AbortWithStatusJSON(status, errorBody{Error: message, Details: details})
}

// Message writes a JSON {"message": ...} acknowledgment.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
