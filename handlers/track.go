package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TrackViewRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	DishID       *uint  `json:"dish_id"`
	Device       string `json:"device"`
}

type TrackScanRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Device       string `json:"device"`
}

// TrackView records a menu or dish view. Fire-and-forget: the event is
// enqueued and the request returns immediately.
func (h *Handler) TrackView(c *gin.Context) {
	var req TrackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.recorder.RecordView(req.RestaurantID, req.DishID, req.Device)
	c.JSON(http.StatusAccepted, gin.H{"message": "recorded"})
}

// TrackScan records a QR code scan
func (h *Handler) TrackScan(c *gin.Context) {
	var req TrackScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.recorder.RecordScan(req.RestaurantID, req.Device)
	c.JSON(http.StatusAccepted, gin.H{"message": "recorded"})
}
