package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope: a human readable detail plus optional per-field messages.
type Response struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
	Fields any    `json:"fields,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, fields any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Detail: msg, Fields: fields}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
