package specification

import "gorm.io/gorm"

// Specification composes one filter onto a gorm query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
