package pgconv

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsNoRows checks if the error is a pgx "no rows" error
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
