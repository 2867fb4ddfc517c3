package service

import "time"

// LogFilter selects notification transitions by time range and phase.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Phase string    // "", "TRIGGERED", "SENT", "IDLE"
}

// Selection identifies what the viewer should load. AlertID, when set,
// takes precedence over Dataset and supplies the analysis context.
type Selection struct {
	Dataset string
	AlertID string
}

// FileQuery filters the downloadable file listing.
type FileQuery struct {
	Search string // case-insensitive substring of the name
	Type   string // "", "capture", "log"
}
