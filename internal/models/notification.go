package models

import "time"

// NotificationPhase is the phase of the overheat notification sequence.
type NotificationPhase string

const (
	PhaseIdle      NotificationPhase = "IDLE"
	PhaseTriggered NotificationPhase = "TRIGGERED"
	PhaseSent      NotificationPhase = "SENT"
)

// NotificationState is the single process-wide notification shown to operators.
type NotificationState struct {
	Phase           NotificationPhase `json:"phase"`
	Message         string            `json:"message,omitempty"`
	SubMessage      string            `json:"sub_message,omitempty"`
	LastTriggerTime time.Time         `json:"last_trigger_time,omitempty"`
}

// Active reports whether a notification is currently visible.
func (s NotificationState) Active() bool {
	return s.Phase == PhaseTriggered || s.Phase == PhaseSent
}

// NotificationEvent is a single logged transition of the notification sequence.
type NotificationEvent struct {
	EventID    string            `json:"event_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Phase      NotificationPhase `json:"phase"`   // TRIGGERED | SENT | IDLE
	Message    string            `json:"message"` // human-readable
	Metadata   any               `json:"metadata,omitempty"`
}
