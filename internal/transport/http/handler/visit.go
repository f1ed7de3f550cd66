package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-hub/internal/app"
	"gamestore-hub/internal/transport/http/middleware"
	"gamestore-hub/internal/transport/http/response"
)

type VisitHandler struct {
	visitService *app.VisitService
}

func NewVisitHandler(visitService *app.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

func (h *VisitHandler) Record(c *gin.Context) {
	stats, err := h.visitService.Record(c.Request.Context(), middleware.GetRequestID(c))
	if err != nil {
		log.Printf("record visit failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"visits":            stats.Visits,
		"last_visit":        stats.LastVisit,
		"unique_visit_days": stats.UniqueVisitDay,
		"log_entries":       stats.LogEntries,
		"statistics":        stats.Statistics,
	})
}

func (h *VisitHandler) Reset(c *gin.Context) {
	if err := h.visitService.Reset(c.Request.Context()); err != nil {
		log.Printf("reset visits failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message": "Visit counter reset successfully",
	})
}
