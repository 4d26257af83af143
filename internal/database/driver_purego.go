//go:build !sqlite_cgo
// +build !sqlite_cgo

package database

// Default build uses the pure Go SQLite implementation, so the binary
// cross-compiles without a C toolchain. Build with -tags sqlite_cgo to
// switch to the cgo driver.

import (
	_ "modernc.org/sqlite"
)

// DriverName is the SQLite driver registered with database/sql.
const DriverName = "sqlite"
