package routes

import (
	"qr-menu-api/auth"
	"qr-menu-api/config"
	"qr-menu-api/handlers"
	"qr-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, authSvc *auth.Service, cfg *config.Config) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/signin", h.SignIn)
		public.POST("/auth/forgot-password", h.ForgotPassword)
		public.POST("/auth/reset-password", h.ResetPassword)

		// Public menu page data, reached via QR code
		public.GET("/r/:slug", h.PublicMenu)

		// Fire-and-forget analytics
		public.POST("/track/view", h.TrackView)
		public.POST("/track/qr", h.TrackScan)

		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Owner dashboard routes ─────────────────────────────────────
	session := r.Group("/api")
	session.Use(middleware.AuthRequired(authSvc))
	{
		session.GET("/restaurant", h.GetMyRestaurant)
		session.PUT("/restaurant", h.UpdateRestaurant)
		session.POST("/restaurant", h.UploadImage)

		session.GET("/categories", h.ListCategories)
		session.POST("/categories", h.CreateCategory)
		session.PATCH("/categories/:id", h.UpdateCategory)
		session.DELETE("/categories/:id", h.DeleteCategory)

		session.GET("/dishes", h.ListDishes)
		session.POST("/dishes", h.CreateDish)
		session.PATCH("/dishes/:id", h.UpdateDish)
		session.DELETE("/dishes/:id", h.DeleteDish)

		session.GET("/menus", h.ListMenus)
		session.POST("/menus", h.CreateMenu)
		session.PATCH("/menus/:id", h.UpdateMenu)
		session.DELETE("/menus/:id", h.DeleteMenu)

		session.GET("/user/:id", h.GetUser)
		session.PATCH("/user/update", h.UpdateUser)
		session.DELETE("/user/delete", h.DeleteAccount)
	}

	// ── Admin routes (shared-secret header) ────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.SecretRequired("X-Admin-Secret", cfg.AdminSecret))
	{
		admin.PUT("/restaurant/:id/status", h.UpdateRestaurantStatus)
		admin.GET("/admin/restaurants", h.AdminListRestaurants)
		admin.GET("/admin/users", h.AdminListUsers)
	}

	// ── CMS webhook (shared-secret header) ─────────────────────────
	r.POST("/api/webhooks/restaurant-status",
		middleware.SecretRequired("X-Webhook-Secret", cfg.WebhookSecret),
		h.RestaurantStatusWebhook)

	// Uploaded assets
	r.Static("/uploads", cfg.UploadDir)
}
