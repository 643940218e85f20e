package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every CV API endpoint answers with. The Go
// client and the admin CLI both decode this shape.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Success sends a success envelope with the given payload.
func Success(c *gin.Context, code int, message string, data any) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: idStr,
	})
}

// Error sends a failure envelope.
func Error(c *gin.Context, code int, message string, err any) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: idStr,
	})
}
