//go:build sqlite_cgo
// +build sqlite_cgo

package database

// Compiled with -tags sqlite_cgo. Uses the C SQLite library through cgo,
// which is faster on large catalogs but requires CGO_ENABLED=1.

import (
	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the SQLite driver registered with database/sql.
const DriverName = "sqlite3"
