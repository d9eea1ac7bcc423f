package handlers

import (
	"errors"
	"net/http"

	"qr-menu-api/models"
	"qr-menu-api/services"

	"github.com/gin-gonic/gin"
)

// StatusWebhookRequest mirrors the CMS status-change document. The payload
// carries a previous_status field but it is sender-controlled, so the
// lifecycle service ignores it and compares against our own stored status.
type StatusWebhookRequest struct {
	RestaurantID   uint          `json:"restaurant_id" binding:"required"`
	Status         models.Status `json:"status" binding:"required"`
	PreviousStatus models.Status `json:"previous_status"`
}

// RestaurantStatusWebhook replays CMS-originated status changes. Duplicate
// deliveries are no-ops: the second delivery finds the status already applied.
func (h *Handler) RestaurantStatusWebhook(c *gin.Context) {
	var req StatusWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.lifecycle.ChangeStatus(c.Request.Context(), req.RestaurantID, req.Status, "system")
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply status change"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status applied", "status": restaurant.Status})
}
