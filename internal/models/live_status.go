package models

import "time"

// LiveStatus is the telemetry snapshot served by the upstream sensor API.
type LiveStatus struct {
	LastUpdate     int64   `json:"last_update"` // unix seconds
	TurbineToken   string  `json:"turbine_token"`
	Mode           string  `json:"mode"` // e.g. "Scanning"
	CurrentAngle   float64 `json:"current_angle"`
	CurrentMaxTemp float64 `json:"current_max_temp"` // °C
	IsOnline       bool    `json:"is_online"`
}

// LastUpdateTime converts LastUpdate to a UTC time.
func (s LiveStatus) LastUpdateTime() time.Time {
	return time.Unix(s.LastUpdate, 0).UTC()
}

// AlertRecord is one historical overheat capture recorded upstream.
type AlertRecord struct {
	ID           string  `json:"id"`
	Timestamp    int64   `json:"timestamp"` // unix seconds
	TurbineToken string  `json:"turbine_token"`
	MaxTemp      float64 `json:"max_temp"`
	Angle        float64 `json:"angle"`
	DatasetPath  string  `json:"dataset_path"`
}

// HistoryPoint is a single point of the peak-temperature chart.
type HistoryPoint struct {
	Time time.Time `json:"time"`
	Temp float64   `json:"temp"`
}

// TelemetrySnapshot is what the poller publishes after each completed tick.
type TelemetrySnapshot struct {
	Status    *LiveStatus    `json:"status,omitempty"`
	History   []HistoryPoint `json:"history"`
	PolledAt  time.Time      `json:"polled_at"`
	LastError string         `json:"last_error,omitempty"`
}
