package request

type LoginRequest struct {
	CustomerID int64 `json:"customerId" binding:"required"`
}
