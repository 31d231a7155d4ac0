package response

import (
	"delivery-admin/internal/usecase/queries"
)

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
}

type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func List[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items}
}

func Page[T any](items []T, next *queries.Cursor) PageResponse[T] {
	resp := PageResponse[T]{Items: items}
	if resp.Items == nil {
		resp.Items = []T{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
