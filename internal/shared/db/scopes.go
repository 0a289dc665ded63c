// Package db holds GORM scopes and the context-carried transaction manager.
package db

import (
	"gorm.io/gorm"
)

// NotDeleted hides rows flagged with is_deleted.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_deleted = ?", false)
	}
}

// NotDeletedWithAlias is NotDeleted for joined queries.
//
//	db.Table("items i").Scopes(db.NotDeletedWithAlias("i")).Find(&rows)
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".is_deleted = ?", false)
	}
}

// ForStore restricts a query to a single tenant. Apply it before any search
// predicate.
func ForStore(storeID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("store_id = ?", storeID)
	}
}

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
