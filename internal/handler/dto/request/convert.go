package request

import (
	"delivery-admin/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Into copies the request fields onto a usecase input with the same field names.
func Into[T any](req any) (T, error) {
	var in T
	if err := copier.Copy(&in, req); err != nil {
		return in, errs.Wrap(err, "failed to map request")
	}
	return in, nil
}
