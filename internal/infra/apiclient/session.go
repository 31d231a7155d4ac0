package apiclient

import (
	"context"
	"net/http"

	reqdto "delivery-admin/internal/handler/dto/request"
	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/session"
)

// Login opens a session and returns it in the form the console caches.
func (c *Client) Login(ctx context.Context, customerID int64) (*session.Record, error) {
	var resp resdto.SessionResponse
	err := c.do(ctx, http.MethodPost, "/api/active-sessions", nil, "", reqdto.LoginRequest{CustomerID: customerID}, &resp)
	if err != nil {
		return nil, err
	}
	return &session.Record{
		Customer: session.Customer{
			ID:       resp.Customer.ID,
			FullName: resp.Customer.FullName,
			Email:    resp.Customer.Email,
		},
		SessionID: resp.ID,
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}

func (c *Client) Validate(ctx context.Context, sessionID int64) error {
	return c.do(ctx, http.MethodGet, idPath("/api/active-sessions/%d", sessionID), nil, "", nil, nil)
}

func (c *Client) Close(ctx context.Context, sessionID int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/active-sessions/%d", sessionID), nil, "", nil, nil)
}

// Me resolves the session behind token.
func (c *Client) Me(ctx context.Context, token string) (*resdto.SessionResponse, error) {
	var resp resdto.SessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/active-sessions/me", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

var _ session.Remote = (*Client)(nil)
