package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"qr-menu-api/middleware"
	"qr-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lifecycleRouter(h *Handler) *gin.Engine {
	r := gin.New()
	admin := r.Group("/api")
	admin.Use(middleware.SecretRequired("X-Admin-Secret", h.cfg.AdminSecret))
	admin.PUT("/restaurant/:id/status", h.UpdateRestaurantStatus)
	r.POST("/api/webhooks/restaurant-status",
		middleware.SecretRequired("X-Webhook-Secret", h.cfg.WebhookSecret),
		h.RestaurantStatusWebhook)
	return r
}

func seedPendingOwner(t *testing.T, h *Handler, email, name string) (*models.User, *models.Restaurant) {
	t.Helper()
	user, restaurant, _ := seedOwner(t, h, email, name)
	require.NoError(t, h.db.Model(user).Update("status", models.StatusPending).Error)
	require.NoError(t, h.db.Model(restaurant).Update("status", models.StatusPending).Error)
	return user, restaurant
}

func hookHeaders(h *Handler) map[string]string {
	return map[string]string{"X-Webhook-Secret": h.cfg.WebhookSecret}
}

func TestWebhook_ActivationIsIdempotent(t *testing.T) {
	h, sender, database := newTestHandler(t)
	r := lifecycleRouter(h)

	user, restaurant := seedPendingOwner(t, h, "hook@example.com", "Hooked")

	payload := gin.H{"restaurant_id": restaurant.ID, "status": "active", "previous_status": "pending"}

	w := performJSON(r, http.MethodPost, "/api/webhooks/restaurant-status", payload, hookHeaders(h))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Duplicate delivery: still 200, but the email fires at most once because
	// our stored previous status is already active.
	w = performJSON(r, http.MethodPost, "/api/webhooks/restaurant-status", payload, hookHeaders(h))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, sender.countSubject("Your restaurant is live"))

	var reloaded models.Restaurant
	require.NoError(t, database.First(&reloaded, restaurant.ID).Error)
	assert.Equal(t, models.StatusActive, reloaded.Status)
	assert.Empty(t, reloaded.PendingReason)

	// Owner account follows the restaurant and can now sign in
	var owner models.User
	require.NoError(t, database.First(&owner, user.ID).Error)
	assert.Equal(t, models.StatusActive, owner.Status)
}

func TestWebhook_IgnoresClaimedPreviousStatus(t *testing.T) {
	h, sender, _ := newTestHandler(t)
	r := lifecycleRouter(h)

	_, restaurant := seedPendingOwner(t, h, "liar@example.com", "Liar")

	// Sender claims the restaurant was already active; we trust our own store,
	// which says pending, so the activation email is still sent.
	payload := gin.H{"restaurant_id": restaurant.ID, "status": "active", "previous_status": "active"}
	w := performJSON(r, http.MethodPost, "/api/webhooks/restaurant-status", payload, hookHeaders(h))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, sender.countSubject("Your restaurant is live"))
}

func TestWebhook_RequiresSecret(t *testing.T) {
	h, _, _ := newTestHandler(t)
	r := lifecycleRouter(h)

	w := performJSON(r, http.MethodPost, "/api/webhooks/restaurant-status",
		gin.H{"restaurant_id": 1, "status": "active"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performJSON(r, http.MethodPost, "/api/webhooks/restaurant-status",
		gin.H{"restaurant_id": 1, "status": "active"},
		map[string]string{"X-Webhook-Secret": "wrong"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminStatusEndpoint(t *testing.T) {
	h, sender, database := newTestHandler(t)
	r := lifecycleRouter(h)

	_, restaurant := seedPendingOwner(t, h, "admin-path@example.com", "Admin Path")
	adminHeaders := map[string]string{"X-Admin-Secret": h.cfg.AdminSecret}
	path := fmt.Sprintf("/api/restaurant/%d/status", restaurant.ID)

	// pending -> disabled is not a defined transition
	w := performJSON(r, http.MethodPut, path, gin.H{"status": "disabled"}, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// pending -> active
	w = performJSON(r, http.MethodPut, path, gin.H{"status": "active"}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, sender.countSubject("Your restaurant is live"))

	// active -> disabled blocks the owner
	w = performJSON(r, http.MethodPut, path, gin.H{"status": "disabled", "reason": "spam"}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	var owner models.User
	require.NoError(t, database.Where("email = ?", "admin-path@example.com").First(&owner).Error)
	assert.Equal(t, models.StatusDisabled, owner.Status)

	// Unknown restaurant
	w = performJSON(r, http.MethodPut, "/api/restaurant/9999/status", gin.H{"status": "active"}, adminHeaders)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing secret
	w = performJSON(r, http.MethodPut, path, gin.H{"status": "active"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
