package database

import "errors"

// ErrNotReady is returned when the pool is requested before the startup hook
// has connected.
var ErrNotReady = errors.New("database not ready")
