// internal/domain/errors.go
package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrInvalidReference = errors.New("referenced entity does not exist")
	ErrInUse            = errors.New("entity is still referenced")
)
