package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	PurchaseTickets(c *gin.Context)
	GetBooking(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// PurchaseTickets handles POST /api/v1/events/:id/purchase
func (ctrl *controller) PurchaseTickets(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking data", nil, err.Error())
		return
	}

	summary, err := ctrl.service.BookSeats(c.Request.Context(), eventID, req)
	if err != nil {
		ctrl.respondBookingError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Tickets purchased successfully", summary, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (ctrl *controller) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	detail, err := ctrl.service.GetBookingDetail(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch booking", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking details retrieved successfully", detail, nil)
}

// respondBookingError maps engine errors onto the HTTP taxonomy. Business
// rejections carry enough detail for the caller to adjust and retry.
func (ctrl *controller) respondBookingError(c *gin.Context, err error) {
	var insufficient *InsufficientSeatsError
	var conflict *SeatConflictError
	var badSeat *InvalidSeatNumberError

	switch {
	case errors.Is(err, ErrEventNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
	case errors.Is(err, ErrInvalidSectionRow):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid section or row", nil, nil)
	case errors.Is(err, ErrInvalidBooking):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking data", nil, err.Error())
	case errors.As(err, &insufficient):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Not enough seats available", nil,
			gin.H{"available": insufficient.Available})
	case errors.As(err, &conflict):
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil,
			gin.H{"seat": conflict.Seat})
	case errors.As(err, &badSeat):
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to process booking", nil, nil)
	}
}
