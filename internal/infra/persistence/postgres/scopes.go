package postgres

import (
	"time"

	"gorm.io/gorm"
)

// createdAfter matches rows created strictly after t.
func createdAfter(t time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at > ?", t)
	}
}

// createdBetween matches rows created in [from, to], both ends inclusive.
func createdBetween(from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at >= ? AND created_at <= ?", from, to)
	}
}

func whereColumn(column string, value any) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}
