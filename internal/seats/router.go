package seats

import "github.com/gin-gonic/gin"

func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.GET("/:id/availability", controller.GetAvailability) // GET /api/v1/events/:id/availability
		events.GET("/:id/seats", controller.GetSeatDetails)         // GET /api/v1/events/:id/seats?section=&row=
	}
}
