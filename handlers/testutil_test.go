package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"qr-menu-api/analytics"
	"qr-menu-api/auth"
	"qr-menu-api/config"
	"qr-menu-api/db"
	"qr-menu-api/mail"
	"qr-menu-api/models"
	"qr-menu-api/services"
	"qr-menu-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) countSubject(subject string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.sent {
		if m.Subject == subject {
			n++
		}
	}
	return n
}

func newTestHandler(t *testing.T) (*Handler, *fakeSender, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := db.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	authSvc, err := auth.NewService(auth.Config{SecretKey: "test-secret-key", Duration: time.Hour})
	require.NoError(t, err)

	sender := &fakeSender{}
	logger := zap.NewNop().Sugar()

	recorder := analytics.NewRecorder(database, logger)
	recorder.Start()
	t.Cleanup(recorder.Stop)

	lifecycle := services.NewLifecycleService(database, sender, logger)

	cfg := &config.Config{
		Env:           "test",
		JWTSecret:     "test-secret-key",
		WebhookSecret: "hook-secret",
		AdminSecret:   "admin-secret",
		AdminEmail:    "admin@platform.test",
		PublicBaseURL: "http://menu.test",
		UploadDir:     t.TempDir(),
	}

	return New(database, authSvc, sender, recorder, lifecycle, cfg, logger), sender, database
}

// seedOwner creates an active user with a restaurant and returns a session token
func seedOwner(t *testing.T, h *Handler, email, restaurantName string) (*models.User, *models.Restaurant, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "Owner",
		Email:        email,
		PasswordHash: string(hash),
		Whatsapp:     "+212612345678",
		Status:       models.StatusActive,
	}
	require.NoError(t, h.db.Create(&user).Error)

	restaurant := models.Restaurant{
		OwnerID: user.ID,
		Name:    restaurantName,
		Slug:    utils.Slugify(restaurantName),
		Status:  models.StatusActive,
	}
	require.NoError(t, h.db.Create(&restaurant).Error)
	require.NoError(t, h.db.Model(&user).Update("restaurant_id", restaurant.ID).Error)
	user.RestaurantID = &restaurant.ID

	token, err := h.auth.GenerateToken(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return &user, &restaurant, token
}

func performJSON(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
