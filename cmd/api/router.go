package api

import (
	"net/http"

	authDelivery "github.com/Real-Streeter/liberty-command/internal/auth/delivery"
	"github.com/Real-Streeter/liberty-command/internal/httperr"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *Handler) {
	httperr.UseJSONFieldNames()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(RateLimit(h.limits.API, "api", apiLimitMessage))

	requireAuth := authDelivery.RequireAuth(h.authUsecase, h.cookies)
	requireAdmin := authDelivery.RequireAdmin()

	// Auth routes
	auth := api.Group("/auth")
	auth.Use(RateLimit(h.limits.Auth, "auth", authLimitMessage))
	h.authHandler.Register(auth, requireAuth)

	// Protected routes
	protected := api.Group("")
	protected.Use(requireAuth)
	{
		protected.GET("/columns", h.columnHandler.GetColumns)
		h.taskHandler.Register(protected.Group("/tasks"))
		h.rfpHandler.Register(protected.Group("/rfps"))
		h.teamHandler.Register(protected.Group("/team"), requireAdmin)

		protected.GET("/settings", h.GetSettings)
		protected.PUT("/settings", requireAdmin, h.UpdateSettings)
	}
}
