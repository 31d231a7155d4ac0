//go:build unit || e2e

package sessioncache_test

import (
	"time"

	"delivery-admin/internal/session"
)

func sampleRecord() session.Record {
	return session.Record{
		Customer:  session.Customer{ID: 3, FullName: "Luis Soto", Email: "luis@example.com"},
		SessionID: 12,
		Token:     "header.payload.signature",
		ExpiresAt: time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC),
	}
}
