package httpx

import "github.com/gin-gonic/gin"

// ErrorBody is the error envelope every route answers with.
// swagger:model
type ErrorBody struct {
	Error string `json:"error"`
	// extra context, only populated outside production
	Details string `json:"details,omitempty"`
	// opaque upstream error code (e.g. a Postgres SQLSTATE)
	Code string `json:"code,omitempty"`
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

func ErrorDetails(c *gin.Context, status int, msg, details, code string) {
	c.JSON(status, ErrorBody{Error: msg, Details: details, Code: code})
}
