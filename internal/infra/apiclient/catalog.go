package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/usecase/queries"
)

func (c *Client) Address(ctx context.Context, id int64) (*queries.AddressView, error) {
	var view queries.AddressView
	if err := c.do(ctx, http.MethodGet, idPath("/api/delivery-addresses/%d", id), nil, "", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) Zones(ctx context.Context) ([]queries.ZoneView, error) {
	var resp resdto.ListResponse[queries.ZoneView]
	if err := c.do(ctx, http.MethodGet, "/api/coverage-zones", nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) Slots(ctx context.Context) ([]queries.SlotView, error) {
	var resp resdto.ListResponse[queries.SlotView]
	if err := c.do(ctx, http.MethodGet, "/api/delivery-slots", nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) Templates(ctx context.Context) ([]queries.TemplateView, error) {
	var resp resdto.ListResponse[queries.TemplateView]
	if err := c.do(ctx, http.MethodGet, "/api/time-slot-templates", nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Availability asks the backend to resolve slots for addressID.
func (c *Client) Availability(ctx context.Context, addressID, selectedSlotID *int64, preserveStale bool) (*queries.AvailabilityView, error) {
	q := url.Values{}
	if addressID != nil {
		q.Set("addressId", strconv.FormatInt(*addressID, 10))
	}
	if selectedSlotID != nil {
		q.Set("selectedSlotId", strconv.FormatInt(*selectedSlotID, 10))
	}
	if preserveStale {
		q.Set("preserveStale", "true")
	}

	var view queries.AvailabilityView
	if err := c.do(ctx, http.MethodGet, "/api/availability", q, "", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) Suggestion(ctx context.Context, addressID int64) (*queries.SuggestionView, error) {
	var view queries.SuggestionView
	if err := c.do(ctx, http.MethodGet, idPath("/api/delivery-addresses/%d/reservation-suggestion", addressID), nil, "", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}
