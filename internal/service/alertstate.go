package service

import (
	"fmt"
	"sort"
	"time"

	"thermal_sentinel/internal/models"
)

// AlertConfig holds the thresholds and timings of the notification sequence.
type AlertConfig struct {
	High          float64       // trigger above this (°C)
	Low           float64       // force-clear below this (°C)
	Cooldown      time.Duration // minimum spacing between two triggers
	DispatchDelay time.Duration // Triggered -> Sent
	Display       time.Duration // Sent -> Idle
	Recipient     string
}

func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		High:          60,
		Low:           55,
		Cooldown:      60 * time.Second,
		DispatchDelay: 2500 * time.Millisecond,
		Display:       5 * time.Second,
		Recipient:     "admin@sentinelcore.com",
	}
}

type alertAction int

const (
	actionMarkSent alertAction = iota + 1
	actionClear
)

type scheduledEvent struct {
	at     time.Time
	action alertAction
}

// AlertMachine is the Idle -> Triggered -> Sent -> Idle sequence with cooldown
// and a hysteresis override. It never reads the wall clock: callers pass now,
// and timer transitions are queued as scheduled events fired by Advance.
// Not safe for concurrent use.
type AlertMachine struct {
	cfg     AlertConfig
	state   models.NotificationState
	pending []scheduledEvent // sorted by at
}

func NewAlertMachine(cfg AlertConfig) *AlertMachine {
	return &AlertMachine{
		cfg:   cfg,
		state: models.NotificationState{Phase: models.PhaseIdle},
	}
}

func (m *AlertMachine) State() models.NotificationState { return m.state }

// NextDeadline returns the time of the earliest pending timer transition.
func (m *AlertMachine) NextDeadline() (time.Time, bool) {
	if len(m.pending) == 0 {
		return time.Time{}, false
	}
	return m.pending[0].at, true
}

// Advance fires every scheduled event due at or before now, in order.
func (m *AlertMachine) Advance(now time.Time) []models.NotificationEvent {
	var out []models.NotificationEvent
	for len(m.pending) > 0 && !m.pending[0].at.After(now) {
		ev := m.pending[0]
		m.pending = m.pending[1:]

		switch ev.action {
		case actionMarkSent:
			if m.state.Phase != models.PhaseTriggered {
				continue
			}
			m.state.Phase = models.PhaseSent
			m.state.Message = "Alert email sent"
			m.state.SubMessage = "Notification dispatched to " + m.cfg.Recipient
			m.schedule(ev.at.Add(m.cfg.Display), actionClear)
			out = append(out, m.event(ev.at, map[string]any{"recipient": m.cfg.Recipient}))
		case actionClear:
			if m.state.Phase != models.PhaseSent {
				continue
			}
			m.reset()
			out = append(out, m.event(ev.at, map[string]any{"reason": "display_elapsed"}))
		}
	}
	return out
}

// Observe feeds one telemetry reading taken at now and returns the
// transitions it caused, including any timer transitions that were due.
func (m *AlertMachine) Observe(now time.Time, maxTemp float64) []models.NotificationEvent {
	out := m.Advance(now)

	switch {
	case m.state.Active() && maxTemp < m.cfg.Low:
		m.pending = nil
		m.reset()
		out = append(out, m.event(now, map[string]any{"reason": "below_reset_threshold", "max_temp": maxTemp}))

	case maxTemp > m.cfg.High && m.state.Phase != models.PhaseTriggered && m.cooldownElapsed(now):
		m.pending = nil
		m.state = models.NotificationState{
			Phase:           models.PhaseTriggered,
			Message:         fmt.Sprintf("Critical temperature alert (%.1f°C)", maxTemp),
			SubMessage:      "Sending notifications to the support team...",
			LastTriggerTime: now,
		}
		m.schedule(now.Add(m.cfg.DispatchDelay), actionMarkSent)
		out = append(out, m.event(now, map[string]any{"max_temp": maxTemp, "threshold": m.cfg.High}))
	}
	return out
}

func (m *AlertMachine) cooldownElapsed(now time.Time) bool {
	last := m.state.LastTriggerTime
	return last.IsZero() || now.Sub(last) >= m.cfg.Cooldown
}

// reset returns to Idle; LastTriggerTime survives so the cooldown still applies.
func (m *AlertMachine) reset() {
	m.state = models.NotificationState{
		Phase:           models.PhaseIdle,
		LastTriggerTime: m.state.LastTriggerTime,
	}
}

func (m *AlertMachine) schedule(at time.Time, action alertAction) {
	m.pending = append(m.pending, scheduledEvent{at: at, action: action})
	sort.SliceStable(m.pending, func(i, j int) bool { return m.pending[i].at.Before(m.pending[j].at) })
}

func (m *AlertMachine) event(at time.Time, meta map[string]any) models.NotificationEvent {
	msg := m.state.Message
	if m.state.Phase == models.PhaseIdle {
		msg = "Notification cleared"
	}
	return models.NotificationEvent{
		OccurredAt: at.UTC(),
		Phase:      m.state.Phase,
		Message:    msg,
		Metadata:   meta,
	}
}
