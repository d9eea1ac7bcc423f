package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"qr-menu-api/models"
	"qr-menu-api/services"
	"qr-menu-api/statemachine"

	"github.com/gin-gonic/gin"
)

type UpdateStatusRequest struct {
	Status models.Status `json:"status" binding:"required"`
	Reason string        `json:"reason"`
}

// UpdateRestaurantStatus lets the platform admin move a restaurant through
// its lifecycle. The activation email is handled by the lifecycle service.
func (h *Handler) UpdateRestaurantStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.lifecycle.ChangeStatus(c.Request.Context(), uint(id), req.Status, "admin")
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	if req.Reason != "" && req.Status != models.StatusActive {
		h.db.Model(restaurant).Update("pending_reason", req.Reason)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant status updated", "restaurant": restaurant})
}

// AdminListRestaurants returns all restaurants, optionally filtered by status
func (h *Handler) AdminListRestaurants(c *gin.Context) {
	query := h.db.Preload("Owner")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var restaurants []models.Restaurant
	query.Order("created_at desc").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// AdminListUsers returns all accounts
func (h *Handler) AdminListUsers(c *gin.Context) {
	query := h.db
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var users []models.User
	query.Order("created_at desc").Find(&users)
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": out})
}

// GetStateMachineInfo returns the restaurant lifecycle for documentation
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine": info,
		"initial_state": models.StatusPending,
		"description":   "Restaurant lifecycle state machine",
	})
}
