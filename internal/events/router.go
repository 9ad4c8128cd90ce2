package events

import "github.com/gin-gonic/gin"

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.POST("", controller.CreateEvent) // POST /api/v1/events - Create event with seating layout
		events.GET("", controller.ListEvents)   // GET  /api/v1/events - Browse all events
		events.GET("/:id", controller.GetEvent) // GET  /api/v1/events/:id - Get event layout
	}
}
