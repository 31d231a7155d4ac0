package queries

import (
	"context"
	"time"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindFirstPage(ctx context.Context, customerID *int64, limit int32) ([]*ReservationView, error)
	FindKeyset(ctx context.Context, customerID *int64, lastReservedAt time.Time, lastID int64, limit int32) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	// List pages through reservations newest first. customerID narrows the
	// list to one customer.
	List(ctx context.Context, customerID *int64, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReservationNotFound)
	}
	return v, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, customerID *int64, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReservationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, customerID, int32(limit+1))
	} else {
		lastReservedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, customerID, lastReservedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.ReservedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
