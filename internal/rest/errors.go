package rest

import (
	"net/http"
	"strconv"

	"github.com/dfryer1193/shoebox/api"
	"github.com/dfryer1193/shoebox/gallery/domain"
	"github.com/gin-gonic/gin"
)

// writeStoreError maps the store's failure kinds onto HTTP statuses. The
// body carries the normalized store message, never an unwrapped driver error.
func writeStoreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch domain.KindOf(err) {
	case domain.ErrKindNotFound:
		status = http.StatusNotFound
	case domain.ErrKindConnection:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, api.ErrorResponse{Error: err.Error()})
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
// The bool result reports whether the caller should proceed.
func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + param})
		return 0, false
	}
	return id, true
}
