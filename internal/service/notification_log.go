package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/repository"
)

type NotificationLogService struct {
	repo repository.NotificationRepo
}

func NewNotificationLogService(repo repository.NotificationRepo) *NotificationLogService {
	return &NotificationLogService{repo: repo}
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidPhase     = errors.New("invalid phase: must be TRIGGERED, SENT or IDLE")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizePhase(s string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(s))
	switch models.NotificationPhase(p) {
	case "", models.PhaseTriggered, models.PhaseSent, models.PhaseIdle:
		return p, nil
	default:
		return "", ErrInvalidPhase
	}
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", ErrInvalidTimeRange
	}

	phase, err := normalizePhase(f.Phase)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return from, to, phase, nil
}

func (s *NotificationLogService) List(ctx context.Context, f LogFilter) ([]models.NotificationEvent, error) {
	from, to, phase, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, from, to, phase)
}
