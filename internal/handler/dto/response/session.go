package response

import (
	"time"

	"delivery-admin/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SessionCustomer struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Type     string `json:"type"`
}

// SessionResponse flattens a session with its owner. Token is only present on
// login.
type SessionResponse struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customerId"`
	StartedAt  time.Time       `json:"startedAt"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	EndedAt    *time.Time      `json:"endedAt,omitempty"`
	Active     bool            `json:"active"`
	Customer   SessionCustomer `json:"customer"`
	Token      string          `json:"token,omitempty"`
}

func FromSessionResult(r *queries.SessionResult) *SessionResponse {
	resp := &SessionResponse{Token: r.Token}
	_ = copier.Copy(resp, &r.Session)
	_ = copier.Copy(&resp.Customer, &r.Customer)
	return resp
}
