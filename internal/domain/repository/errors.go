package repository

import "errors"

// ErrDuplicateKey is returned by implementations when a write violates a
// unique index. Usecases depend on it for the uniqueness rules (owner DNI,
// animal per owner, catalog names) and for the room-slot insert-or-fail.
var ErrDuplicateKey = errors.New("duplicate key")
