package colbench

import "github.com/pkg/errors"

var ErrOutOfRange = errors.New("out of range")

// ErrSchemaMismatch is returned when values are filled into a table
// without respecting its column count.
var ErrSchemaMismatch = errors.New("schema mismatch")
