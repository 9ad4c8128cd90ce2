package bookings

import "github.com/gin-gonic/gin"

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.POST("/:id/purchase", controller.PurchaseTickets) // POST /api/v1/events/:id/purchase - Book seats
	}

	bookings := router.Group("/bookings")
	{
		bookings.GET("/:id", controller.GetBooking) // GET /api/v1/bookings/:id - Booking detail
	}
}
