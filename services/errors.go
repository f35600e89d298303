package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a missing target row and a missing referenced
	// parent (category of a subcategory, subcategory of an item).
	ErrNotFound = errors.New("record not found")

	// ErrNameTaken is returned when a write trips a unique-name index.
	ErrNameTaken = errors.New("name already taken")
)

// ConflictError carries a caller-facing message for state conflicts that are
// not plain name collisions: duplicate tag assignment and restricted deletes.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// translate maps store-reported error kinds onto the service taxonomy.
// Anything unrecognized passes through and ends up as an internal error.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrNameTaken
	default:
		return err
	}
}
