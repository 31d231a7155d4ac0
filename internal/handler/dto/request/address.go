package request

type AddressRequest struct {
	CustomerID int64    `json:"customerId" binding:"required"`
	ComunaID   *int64   `json:"comunaId,omitempty"`
	Street     string   `json:"street" binding:"required"`
	Locality   string   `json:"locality" binding:"required"`
	Commune    string   `json:"commune" binding:"required"`
	Region     string   `json:"region" binding:"required"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	IsDefault  *bool    `json:"isDefault,omitempty"`
}
