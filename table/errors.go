package table

import "errors"

var (
	ErrDuplicateID        = errors.New("record id already exists")
	ErrMissingID          = errors.New("record id is required")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateColumn    = errors.New("column key already exists")
	ErrColumnNotFound     = errors.New("column not found")
	ErrInvalidPermutation = errors.New("column order is not a permutation of the current columns")
	ErrNotEditing         = errors.New("record is not being edited")
)
