package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-hub/internal/app"
	"gamestore-hub/internal/transport/http/response"
)

type SubscriberHandler struct {
	subscriberService *app.SubscriberService
}

type SubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

func NewSubscriberHandler(subscriberService *app.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.subscriberService.Subscribe(c.Request.Context(), req.Email, req.Source); err != nil {
		var validationErr *app.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(c, http.StatusBadRequest, validationErr.Message)
			return
		}
		log.Printf("subscribe failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.OK(c, http.StatusAccepted, gin.H{
		"message": "Subscription received",
	})
}
