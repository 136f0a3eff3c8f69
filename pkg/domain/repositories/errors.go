package repositories

import "errors"

// ErrKeyNotFound indicates a lookup key matched zero rows in a table.
// Lookups never return an empty observation set instead of this error.
var ErrKeyNotFound = errors.New("key not found")
