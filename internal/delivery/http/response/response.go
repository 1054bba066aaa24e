package response

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape of every failure: {"message": "..."}.
type ErrorBody struct {
	Message string `json:"message"`
}

// JSON sends a success payload as-is. Successful responses are plain
// documents (or arrays), not an envelope.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends the standard error body.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Message: message})
}
