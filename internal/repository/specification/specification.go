package specification

import "gorm.io/gorm"

// Specification composes query predicates onto a GORM chain. Repositories
// take a variadic list so callers combine filters without new methods.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
