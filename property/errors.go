package property

import "errors"

// ErrTypeMismatch indicates that a property name was requested with a Go
// type different from the one it was created with. It is the only error
// this package signals: a missing name surfaces as ok=false from Get, and
// indexing through a removed handle is a contract violation, not a
// recoverable condition.
var ErrTypeMismatch = errors.New("property: type mismatch for name")
