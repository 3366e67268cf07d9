package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/jobboard-backend/internal/services"
)

// kindToStatus maps the service error taxonomy onto HTTP codes.
var kindToStatus = map[services.Kind]int{
	services.KindNotFound:        http.StatusNotFound,
	services.KindUnauthorized:    http.StatusForbidden,
	services.KindConflict:        http.StatusConflict,
	services.KindInvalidState:    http.StatusConflict,
	services.KindValidation:      http.StatusBadRequest,
	services.KindAlreadyRefunded: http.StatusConflict,
}

// respondError writes the stable error kind plus the human message.
// Unclassified errors become opaque 500s.
func respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	status, ok := kindToStatus[kind]
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"kind": string(kind), "error": err.Error()})
}
