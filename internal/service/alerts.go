package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/repository"
)

// NotifierService owns the process-wide AlertMachine and logs every
// transition it produces.
type NotifierService struct {
	mu      sync.Mutex
	machine *AlertMachine
	events  repository.NotificationRepo
}

func NewNotifierService(cfg AlertConfig, events repository.NotificationRepo) *NotifierService {
	return &NotifierService{
		machine: NewAlertMachine(cfg),
		events:  events,
	}
}

// Observe feeds one reading and persists the resulting transitions. The
// transitions are returned even when persisting fails.
func (s *NotifierService) Observe(ctx context.Context, now time.Time, maxTemp float64) ([]models.NotificationEvent, error) {
	s.mu.Lock()
	evs := s.machine.Observe(now, maxTemp)
	s.mu.Unlock()
	return evs, s.persist(ctx, evs)
}

// Advance fires timer transitions due at now.
func (s *NotifierService) Advance(ctx context.Context, now time.Time) ([]models.NotificationEvent, error) {
	s.mu.Lock()
	evs := s.machine.Advance(now)
	s.mu.Unlock()
	return evs, s.persist(ctx, evs)
}

func (s *NotifierService) State() models.NotificationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

func (s *NotifierService) NextDeadline() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.NextDeadline()
}

func (s *NotifierService) persist(ctx context.Context, evs []models.NotificationEvent) error {
	if s.events == nil {
		return nil
	}
	var errs []error
	for _, e := range evs {
		if err := s.events.Append(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("log %s transition: %w", e.Phase, err))
		}
	}
	return errors.Join(errs...)
}
