package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/repository"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. On failure it writes the 400
// response and reports false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("id inválido: "+c.Param("id")))
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps a store failure to the API error policy: a missed
// id yields 404, everything else surfaces as 400 with the raw message.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusBadRequest, response.Error(err.Error()))
}
