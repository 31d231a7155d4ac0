package request

type ReservationRequest struct {
	CustomerID        int64  `json:"customerId" binding:"required"`
	DeliveryAddressID int64  `json:"deliveryAddressId" binding:"required"`
	DeliverySlotID    int64  `json:"deliverySlotId" binding:"required"`
	ReservationDate   string `json:"reservationDate" binding:"required"`
	ReservationTime   string `json:"reservationTime" binding:"required"`
	Status            string `json:"status,omitempty"`
	Version           *int64 `json:"version,omitempty"`
}
