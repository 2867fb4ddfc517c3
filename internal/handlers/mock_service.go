package handlers

import (
	"context"
	"io"
	"net/http"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/render"
	"thermal_sentinel/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTelemetry struct {
	snap models.TelemetrySnapshot
}

func (m *mockTelemetry) Snapshot() models.TelemetrySnapshot { return m.snap }

type mockNotifications struct {
	state models.NotificationState
}

func (m *mockNotifications) State() models.NotificationState { return m.state }

type mockNotificationLog struct {
	resp       []models.NotificationEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockNotificationLog) List(ctx context.Context, f service.LogFilter) ([]models.NotificationEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockViewer struct {
	state service.ViewState
	// done is returned by mutations; nil means an already closed channel
	done chan struct{}

	selectErr error
	frameErr  error
	modeErr   error
	lastSel   service.Selection
	lastFrame int
	lastMode  string

	evolution     []models.EvolutionPoint
	evolutionErr  error
	lastEvolution string

	raster      []byte
	rasterErr   error
	lastPalette string
	lastScale   int

	mesh    *render.Mesh
	meshErr error

	pickRes    render.PickResult
	pickHit    bool
	pickErr    error
	lastCamera render.Camera
	lastNDC    render.NDC
}

func (m *mockViewer) doneChan() <-chan struct{} {
	if m.done != nil {
		return m.done
	}
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (m *mockViewer) Select(ctx context.Context, sel service.Selection) (service.ViewState, <-chan struct{}, error) {
	m.lastSel = sel
	if m.selectErr != nil {
		return service.ViewState{}, nil, m.selectErr
	}
	return m.state, m.doneChan(), nil
}
func (m *mockViewer) SetFrame(index int) (service.ViewState, <-chan struct{}, error) {
	m.lastFrame = index
	if m.frameErr != nil {
		return service.ViewState{}, nil, m.frameErr
	}
	return m.state, m.doneChan(), nil
}
func (m *mockViewer) SetMode(mode string) (service.ViewState, <-chan struct{}, error) {
	m.lastMode = mode
	if m.modeErr != nil {
		return service.ViewState{}, nil, m.modeErr
	}
	return m.state, m.doneChan(), nil
}
func (m *mockViewer) State() service.ViewState { return m.state }
func (m *mockViewer) Evolution(ctx context.Context, dataset string) ([]models.EvolutionPoint, error) {
	m.lastEvolution = dataset
	return m.evolution, m.evolutionErr
}
func (m *mockViewer) WriteRaster(w io.Writer, palette string, scale int) error {
	m.lastPalette = palette
	m.lastScale = scale
	if m.rasterErr != nil {
		return m.rasterErr
	}
	_, err := w.Write(m.raster)
	return err
}
func (m *mockViewer) Mesh() (*render.Mesh, error) { return m.mesh, m.meshErr }
func (m *mockViewer) Pick(pointer render.NDC, cam render.Camera) (render.PickResult, bool, error) {
	m.lastNDC = pointer
	m.lastCamera = cam
	return m.pickRes, m.pickHit, m.pickErr
}

type mockAnalysis struct {
	res   service.AnalysisResult
	err   error
	calls int
}

func (m *mockAnalysis) Analyze(ctx context.Context) (service.AnalysisResult, error) {
	m.calls++
	return m.res, m.err
}

type mockSettings struct {
	view      service.SettingsView
	getErr    error
	updateErr error
	credErr   error
	lastCfg   models.RemoteConfig
	lastKey   string
	updates   int
}

func (m *mockSettings) Get(ctx context.Context) (service.SettingsView, error) {
	return m.view, m.getErr
}
func (m *mockSettings) Update(ctx context.Context, cfg models.RemoteConfig) error {
	m.updates++
	m.lastCfg = cfg
	return m.updateErr
}
func (m *mockSettings) SetCredential(ctx context.Context, key string) error {
	m.lastKey = key
	return m.credErr
}

type mockFiles struct {
	resp      []models.DataFile
	err       error
	lastQuery service.FileQuery
}

func (m *mockFiles) List(ctx context.Context, q service.FileQuery) ([]models.DataFile, error) {
	m.lastQuery = q
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

const testAlertThreshold = 60

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, testAlertThreshold)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// authedRequest builds a request carrying a valid bearer token.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req, _ := http.NewRequest(method, target, body)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
