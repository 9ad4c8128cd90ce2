package seats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketly/internal/events"
	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	GetAvailability(c *gin.Context)
	GetSeatDetails(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetAvailability handles GET /api/v1/events/:id/availability
func (ctrl *controller) GetAvailability(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	availability, err := ctrl.service.GetAvailability(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, events.ErrEventNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch availability", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat availability retrieved successfully", availability, nil)
}

// GetSeatDetails handles GET /api/v1/events/:id/seats?section=...&row=...
func (ctrl *controller) GetSeatDetails(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	section := c.Query("section")
	row := c.Query("row")
	if section == "" || row == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Section and row are required", nil, nil)
		return
	}

	details, err := ctrl.service.GetSeatDetails(c.Request.Context(), eventID, section, row)
	if err != nil {
		if errors.Is(err, events.ErrEventNotFound) || errors.Is(err, ErrSectionRowNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Event, section or row not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch seat details", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat details retrieved successfully", details, nil)
}
