package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"thermal_sentinel/internal/models"
)

// fakeNotificationRepo satisfies repository.NotificationRepo and records calls.
type fakeNotificationRepo struct {
	mu sync.Mutex

	gotFrom  time.Time
	gotTo    time.Time
	gotPhase string

	events    []models.NotificationEvent
	appended  []models.NotificationEvent
	err       error
	appendErr error

	calls int
}

func (f *fakeNotificationRepo) List(ctx context.Context, from, to time.Time, phase string) ([]models.NotificationEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotFrom = from
	f.gotTo = to
	f.gotPhase = phase
	return f.events, f.err
}

func (f *fakeNotificationRepo) Append(ctx context.Context, e models.NotificationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeNotificationRepo) appendedPhases() []models.NotificationPhase {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.NotificationPhase, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Phase)
	}
	return out
}

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want func(time.Time) bool
	}{
		{
			name: "zero time remains zero",
			in:   time.Time{},
			want: func(out time.Time) bool { return out.IsZero() },
		},
		{
			name: "non-UTC converted to UTC preserving instant",
			in:   mustTimeIn(time.FixedZone("UTC+3", 3*3600), 2025, time.August, 1, 12, 34, 56),
			want: func(out time.Time) bool {
				exp := time.Date(2025, time.August, 1, 9, 34, 56, 0, time.UTC)
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeToUTC(tc.in)
			if !tc.want(got) {
				t.Fatalf("unexpected normalizeToUTC result: %v (loc=%v)", got, got.Location())
			}
		})
	}
}

func Test_normalizePhase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		exp     string
		wantErr error
	}{
		{name: "empty stays empty", in: "", exp: ""},
		{name: "trim and uppercase", in: "  sent ", exp: "SENT"},
		{name: "idle", in: "Idle", exp: "IDLE"},
		{name: "unknown phase", in: "start", wantErr: ErrInvalidPhase},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizePhase(c.in)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("normalizePhase(%q) err = %v; want %v", c.in, err, c.wantErr)
			}
			if got != c.exp {
				t.Fatalf("normalizePhase(%q) = %q; want %q", c.in, got, c.exp)
			}
		})
	}
}

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	fromLocal := mustTimeIn(time.FixedZone("UTC+2", 2*3600), 2025, time.September, 10, 10, 0, 0)
	toUTC := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		in        LogFilter
		wantFrom  time.Time
		wantTo    time.Time
		wantPhase string
		wantErr   error
	}{
		{
			name: "all zero/empty ok",
			in:   LogFilter{},
		},
		{
			name: "from after to -> error",
			in: LogFilter{
				From:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:    time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
				Phase: "sent",
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "normalize tz and phase",
			in: LogFilter{
				From:  fromLocal,
				To:    toUTC,
				Phase: " triggered ",
			},
			wantFrom:  time.Date(2025, time.September, 10, 8, 0, 0, 0, time.UTC),
			wantTo:    toUTC,
			wantPhase: "TRIGGERED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gotFrom, gotTo, gotPhase, err := normalizeAndValidateFilter(tc.in)

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v; got %v", tc.wantErr, err)
			}
			if !gotFrom.Equal(tc.wantFrom) {
				t.Fatalf("from: got %v; want %v", gotFrom, tc.wantFrom)
			}
			if !gotTo.Equal(tc.wantTo) {
				t.Fatalf("to: got %v; want %v", gotTo, tc.wantTo)
			}
			if gotPhase != tc.wantPhase {
				t.Fatalf("phase: got %q; want %q", gotPhase, tc.wantPhase)
			}
		})
	}
}

func TestNotificationLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	frepo := &fakeNotificationRepo{
		events: []models.NotificationEvent{{EventID: "1"}},
	}
	svc := NewNotificationLogService(frepo)

	fromLocal := mustTimeIn(time.FixedZone("UTC+5", 5*3600), 2025, time.October, 1, 10, 0, 0)
	toLocal := mustTimeIn(time.FixedZone("UTC-2", -2*3600), 2025, time.October, 1, 12, 30, 0)

	out, err := svc.List(context.Background(), LogFilter{From: fromLocal, To: toLocal, Phase: "  sent "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}
	if frepo.calls != 1 {
		t.Fatalf("repo List should be called once, got %d", frepo.calls)
	}

	wantFrom := time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, time.October, 1, 14, 30, 0, 0, time.UTC)
	if !frepo.gotFrom.Equal(wantFrom) || !frepo.gotTo.Equal(wantTo) {
		t.Fatalf("repo got [%v, %v]; want [%v, %v]", frepo.gotFrom, frepo.gotTo, wantFrom, wantTo)
	}
	if frepo.gotPhase != "SENT" {
		t.Fatalf("repo gotPhase=%q; want %q", frepo.gotPhase, "SENT")
	}
}

func TestNotificationLogService_List_ValidationError(t *testing.T) {
	t.Parallel()

	frepo := &fakeNotificationRepo{}
	svc := NewNotificationLogService(frepo)

	_, err := svc.List(context.Background(), LogFilter{Phase: "bogus"})
	if !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("expected ErrInvalidPhase; got %v", err)
	}
	if frepo.calls != 0 {
		t.Fatalf("repo should not be called on validation error, calls=%d", frepo.calls)
	}
}

func TestNotificationLogService_List_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	frepo := &fakeNotificationRepo{err: errors.New("db down")}
	svc := NewNotificationLogService(frepo)

	_, err := svc.List(context.Background(), LogFilter{})
	if !errors.Is(err, frepo.err) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}
