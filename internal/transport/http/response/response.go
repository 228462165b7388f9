package response

import "github.com/gin-gonic/gin"

type ErrorBody struct {
	Error string `json:"error"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Error writes {"error": message}. Callers pass caller-safe messages only.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}
