package handlers

import (
	"net/http"
	"testing"

	"qr-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/api/r/:slug", h.PublicMenu)
	r.POST("/api/track/view", h.TrackView)
	r.POST("/api/track/qr", h.TrackScan)
	return r
}

func TestPublicMenu_OnlyActiveRestaurantsVisible(t *testing.T) {
	h, _, database := newTestHandler(t)
	r := publicRouter(h)

	_, restaurant, _ := seedOwner(t, h, "public@example.com", "Public Resto")

	visible := models.Category{RestaurantID: restaurant.ID, Name: "Mains", IsActive: true, SortOrder: 1}
	hidden := models.Category{RestaurantID: restaurant.ID, Name: "Hidden", IsActive: false, SortOrder: 2}
	require.NoError(t, database.Create(&visible).Error)
	require.NoError(t, database.Create(&hidden).Error)
	require.NoError(t, database.Create(&models.Dish{
		RestaurantID: restaurant.ID, CategoryID: visible.ID, Name: "Tagine", Price: 12, IsAvailable: true,
	}).Error)
	require.NoError(t, database.Create(&models.Dish{
		RestaurantID: restaurant.ID, CategoryID: visible.ID, Name: "Out of stock", Price: 8, IsAvailable: false,
	}).Error)

	w := performJSON(r, http.MethodGet, "/api/r/public-resto", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	sections := body["menu"].([]interface{})
	require.Len(t, sections, 1) // inactive category hidden

	section := sections[0].(map[string]interface{})
	dishes := section["dishes"].([]interface{})
	require.Len(t, dishes, 1) // unavailable dish hidden
	assert.Equal(t, "Tagine", dishes[0].(map[string]interface{})["name"])

	// Pending and disabled restaurants 404
	for _, status := range []models.Status{models.StatusPending, models.StatusDisabled} {
		require.NoError(t, database.Model(restaurant).Update("status", status).Error)
		w = performJSON(r, http.MethodGet, "/api/r/public-resto", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "status %s should hide the menu", status)
	}

	// Unknown slug
	w = performJSON(r, http.MethodGet, "/api/r/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackEndpoints(t *testing.T) {
	h, _, database := newTestHandler(t)
	r := publicRouter(h)

	_, restaurant, _ := seedOwner(t, h, "track@example.com", "Tracked")

	w := performJSON(r, http.MethodPost, "/api/track/view",
		gin.H{"restaurant_id": restaurant.ID, "device": "mobile"}, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = performJSON(r, http.MethodPost, "/api/track/qr",
		gin.H{"restaurant_id": restaurant.ID, "device": "mobile"}, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	// restaurant_id is the only required field
	w = performJSON(r, http.MethodPost, "/api/track/view", gin.H{"device": "mobile"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Stop flushes the queue so the rows are visible
	h.recorder.Stop()

	var views, scans int64
	database.Model(&models.MenuView{}).Where("restaurant_id = ?", restaurant.ID).Count(&views)
	database.Model(&models.QrScan{}).Where("restaurant_id = ?", restaurant.ID).Count(&scans)
	assert.Equal(t, int64(1), views)
	assert.Equal(t, int64(1), scans)
}
