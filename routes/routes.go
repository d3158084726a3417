package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/handlers"
	"nexus/middleware"
	"nexus/models"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Flow         *handlers.BookingFlowHandler
	Catalog      *handlers.CatalogHandler
	Session      *handlers.SessionHandler
	Auth         *handlers.AuthHandler
	Notification *handlers.NotificationHandler
	Provider     *handlers.ProviderHandler
}

// RegisterRoutes mounts every route group on the engine.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	RegisterBookingRoutes(r, h.Flow)

	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/providers", h.Catalog.ListProviders)
		catalog.GET("/providers/:id", h.Catalog.GetProvider)
	}

	session := r.Group("/api/session")
	{
		session.GET("", h.Session.Current)
		session.POST("/role", h.Session.SwitchRole)
		session.POST("/navigate", h.Session.Navigate)
		session.POST("/back", h.Session.GoBack)
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/otp/request", h.Auth.RequestOTP)
		auth.POST("/otp/verify", h.Auth.VerifyOTP)
		auth.POST("/login", h.Auth.Login)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.GET("/unread", h.Notification.UnreadCount)
		notifications.POST("/:id/read", h.Notification.MarkRead)
		notifications.POST("/read-all", h.Notification.MarkAllRead)
	}

	// Provider actions require a provider-role session token.
	providerGroup := r.Group("/api/provider")
	providerGroup.Use(middleware.SessionAuthMiddleware(string(models.RoleProvider)))
	{
		providerGroup.POST("/studio", h.Provider.PublishStudio)
		providerGroup.POST("/slots", h.Provider.SetSlotBlocked)
		providerGroup.GET("/:id/requests", h.Provider.ListRequests)
		providerGroup.POST("/bookings/:id/accept", h.Provider.AcceptBooking)
		providerGroup.POST("/bookings/:id/refuse", h.Provider.RefuseBooking)
	}

	// Client-side cancellation of a pending request.
	r.POST("/api/bookings/:id/cancel", h.Provider.CancelBooking)
}
