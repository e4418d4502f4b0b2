package repository

import "errors"

// Storage-level sentinel errors. Services translate these into the
// API error taxonomy.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
