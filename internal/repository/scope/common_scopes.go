package scope

import "gorm.io/gorm"

// Record streams are always read in insertion order.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}
