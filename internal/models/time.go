package models

import "time"

// TimeFormat is the timestamp layout stored in the database. Timestamps are
// kept as TEXT so both SQLite drivers read them back identically.
const TimeFormat = "2006-01-02 15:04:05"

// Timestamp returns the current time formatted for storage.
func Timestamp() string {
	return time.Now().Format(TimeFormat)
}
