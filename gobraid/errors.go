package gobraid

import "errors"

// Errors
var (
	ErrUnmarshal       = errors.New("unmarshal failed")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrReadOnlyCatalog = errors.New("catalog is in read-only mode")
	ErrBadGenerator    = errors.New("generator index out of range")
	ErrBadWordExpr     = errors.New("bad braid word expression")
	ErrNotKnot         = errors.New("braid closure is not a single component")
	ErrTwistCensus     = errors.New("twist region census below 2")
)
