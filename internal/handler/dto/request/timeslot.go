package request

// TemplateRequest times are HH:MM.
type TemplateRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

type SlotRequest struct {
	TimeSlotTemplateID int64   `json:"timeSlotTemplateId" binding:"required"`
	DeliveryDate       string  `json:"deliveryDate" binding:"required"`
	DeliveryCost       float64 `json:"deliveryCost"`
	MaxCapacity        *int    `json:"maxCapacity,omitempty"`
	ReservedCount      *int    `json:"reservedCount,omitempty"`
	IsActive           *bool   `json:"isActive,omitempty"`
}
