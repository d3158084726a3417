package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, flow *handlers.BookingFlowHandler) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/draft", flow.GetDraft)
		booking.POST("/draft/provider", flow.SelectProvider)  // step 1
		booking.POST("/draft/service", flow.SelectService)    // step 2
		booking.POST("/draft/location", flow.SelectLocation)  // step 3
		booking.POST("/draft/datetime", flow.SelectDateTime)  // step 4
		booking.POST("/draft/contact", flow.EnterContact)     // step 5
		booking.POST("/submit", flow.Submit)
		booking.POST("/cancel", flow.CancelDraft)
		booking.GET("/records", flow.ListBookings)
	}
}
