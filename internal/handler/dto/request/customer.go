package request

type CustomerRequest struct {
	FullName     string  `json:"fullName" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        *string `json:"phone,omitempty"`
	CustomerType string  `json:"customerType" binding:"required"`
}
