package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
)

// Every API route is salon-scoped; the salon id rides in the path.
func salonIDParam(c *gin.Context) (uint, bool) {
	return uintParam(c, "salonID")
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "expected a numeric id")
		return 0, false
	}
	return uint(id), true
}

func uintQuery(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
