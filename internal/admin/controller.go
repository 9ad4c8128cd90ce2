package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	ListBookings(c *gin.Context)
	GetStats(c *gin.Context)
	Reset(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// ListBookings handles GET /api/v1/admin/bookings
func (ctrl *controller) ListBookings(c *gin.Context) {
	all, err := ctrl.service.ListBookings(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch bookings", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings list retrieved successfully", all, nil)
}

// GetStats handles GET /api/v1/admin/stats
func (ctrl *controller) GetStats(c *gin.Context) {
	stats, err := ctrl.service.GetStats(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch stats", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Admin statistics retrieved successfully", stats, nil)
}

// Reset handles POST /api/v1/admin/reset
func (ctrl *controller) Reset(c *gin.Context) {
	if err := ctrl.service.ResetAll(c.Request.Context()); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to reset data", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "All data reset successfully", nil, nil)
}
