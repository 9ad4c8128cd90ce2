package bookings

type PurchaseRequest struct {
	Section     string `json:"section" binding:"required"`
	Row         string `json:"row" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	SeatNumbers []int  `json:"seatNumbers" binding:"omitempty"`
}
