package interfaces

import "errors"

// ErrDuplicateKey is returned by repositories when a unique key is taken.
var ErrDuplicateKey = errors.New("duplicate key")
