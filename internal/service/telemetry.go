package service

import (
	"sync"
	"time"

	"thermal_sentinel/internal/models"
)

// historyLimit is how many of the newest alerts feed the peak-temperature chart.
const historyLimit = 15

// TelemetryService holds the most recent completed poll. Ticks overwrite
// each other; a failed tick keeps the previous data and records the error.
type TelemetryService struct {
	mu   sync.RWMutex
	snap models.TelemetrySnapshot
}

func NewTelemetryService() *TelemetryService {
	return &TelemetryService{snap: models.TelemetrySnapshot{History: []models.HistoryPoint{}}}
}

// Snapshot returns a copy safe for the caller to keep.
func (s *TelemetryService) Snapshot() models.TelemetrySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.snap
	if s.snap.Status != nil {
		st := *s.snap.Status
		out.Status = &st
	}
	out.History = append([]models.HistoryPoint(nil), s.snap.History...)
	if out.History == nil {
		out.History = []models.HistoryPoint{}
	}
	return out
}

func (s *TelemetryService) publish(status models.LiveStatus, alerts []models.AlertRecord, at time.Time) {
	history := historyFromAlerts(alerts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = models.TelemetrySnapshot{
		Status:   &status,
		History:  history,
		PolledAt: normalizeToUTC(at),
	}
}

func (s *TelemetryService) recordError(err error, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LastError = err.Error()
	s.snap.PolledAt = normalizeToUTC(at)
}

// historyFromAlerts takes the newest historyLimit alerts (upstream lists
// newest first) and returns them oldest first.
func historyFromAlerts(alerts []models.AlertRecord) []models.HistoryPoint {
	n := len(alerts)
	if n > historyLimit {
		n = historyLimit
	}
	out := make([]models.HistoryPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, models.HistoryPoint{
			Time: time.Unix(alerts[i].Timestamp, 0).UTC(),
			Temp: alerts[i].MaxTemp,
		})
	}
	return out
}
