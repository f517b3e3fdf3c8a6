package service

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// mayus normalizes free-text identity fields: uppercase, trimmed. Plates,
// names, brands and document numbers are stored this way so lookups never
// miss on casing.
func mayus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func mayusPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := mayus(*s)
	return &v
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

const fechaISO = "2006-01-02T15:04:05Z"
