package models

import "time"

// RemoteConfig is the scanner configuration record exchanged with the upstream API.
type RemoteConfig struct {
	MaxTempTrigger  float64 `json:"max_temp_trigger"`
	ScanWaitTimeSec int     `json:"scan_wait_time_sec"`
	SystemEnabled   bool    `json:"system_enabled"`
	PanStepDegrees  float64 `json:"pan_step_degrees"`
	AlertEmail      string  `json:"alert_email"`
}

// Settings is the locally cached configuration row.
type Settings struct {
	ID        int          `json:"id"`
	Remote    RemoteConfig `json:"remote"`
	AIAPIKey  string       `json:"-"` // credential for the analysis collaborator
	UpdatedAt time.Time    `json:"updated_at"`
}
