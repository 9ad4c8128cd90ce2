package admin

import "github.com/gin-gonic/gin"

func SetupAdminRoutes(router *gin.RouterGroup, controller Controller) {
	adminGroup := router.Group("/admin")
	{
		adminGroup.GET("/bookings", controller.ListBookings) // GET  /api/v1/admin/bookings - All bookings
		adminGroup.GET("/stats", controller.GetStats)        // GET  /api/v1/admin/stats - Aggregate stats
		adminGroup.POST("/reset", controller.Reset)          // POST /api/v1/admin/reset - Wipe all data
	}
}
