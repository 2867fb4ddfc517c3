package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, testAlertThreshold)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialStream(t *testing.T, s *service.Service) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil, testAlertThreshold)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	return env
}

func TestWebSocket_TelemetryAndNotificationStream(t *testing.T) {
	tel := &mockTelemetry{snap: models.TelemetrySnapshot{
		Status:    &models.LiveStatus{TurbineToken: "WTG-07", CurrentMaxTemp: 64, IsOnline: true},
		LastError: "upstream timeout",
	}}
	notes := &mockNotifications{state: models.NotificationState{Phase: models.PhaseSent, Message: "Alert email sent"}}
	conn := dialStream(t, &service.Service{Telemetry: tel, Notifications: notes})

	// initial push: telemetry then the current notification
	env := readEnvelope(t, conn)
	if env.Type != envTelemetry || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	if env.Error != "upstream timeout" {
		t.Fatalf("poll error not surfaced: %+v", env)
	}
	var snap models.TelemetrySnapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("unmarshal telemetry: %v", err)
	}
	if snap.Status == nil || snap.Status.TurbineToken != "WTG-07" {
		t.Fatalf("unexpected telemetry: %+v", snap)
	}

	env = readEnvelope(t, conn)
	if env.Type != envNotification {
		t.Fatalf("expected notification, got %+v", env)
	}
	var st models.NotificationState
	if err := json.Unmarshal(env.Data, &st); err != nil {
		t.Fatalf("unmarshal notification: %v", err)
	}
	if st.Phase != models.PhaseSent {
		t.Fatalf("unexpected notification: %+v", st)
	}

	// unchanged notification is not repeated on later ticks
	for i := 0; i < 3; i++ {
		if env := readEnvelope(t, conn); env.Type != envTelemetry {
			t.Fatalf("tick %d: expected telemetry only, got %+v", i, env)
		}
	}
}

func TestWSStream_Changed(t *testing.T) {
	s := &wsStream{}
	idle := models.NotificationState{Phase: models.PhaseIdle}
	if !s.changed(idle) {
		t.Fatalf("first notification must be sent")
	}
	s.lastSent = &idle
	if s.changed(models.NotificationState{Phase: models.PhaseIdle}) {
		t.Fatalf("identical state reported as changed")
	}
	if !s.changed(models.NotificationState{Phase: models.PhaseTriggered, Message: "Critical temperature alert (61.0°C)"}) {
		t.Fatalf("phase change not detected")
	}
}
