package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the flat error envelope every endpoint emits.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func Internal() Response {
	return Response{Status: http.StatusInternalServerError, Error: "Internal server error"}
}

// Abort keeps the original error on the context for the logging middleware
// and writes the envelope.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
