package api

import (
	"net/http"
	"strconv"

	"little-lemon/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const detailInternal = "A server error occurred."

// parseID reads a positive integer path id, aborting with 400 otherwise.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
