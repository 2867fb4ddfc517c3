package models

// DataFile is a downloadable capture or log listed by the sensor API.
type DataFile struct {
	Name   string  `json:"name"`
	SizeKB float64 `json:"size_kb"`
	Date   string  `json:"date"`
	Type   string  `json:"type"` // "capture" | "log"
}
