package service

import (
	"context"
	"io"
	"time"

	"thermal_sentinel/internal/logger"
	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/render"
	"thermal_sentinel/internal/repository"
)

// Authorization manages operator accounts and their bearer tokens.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Telemetry exposes the latest completed poll.
type Telemetry interface {
	Snapshot() models.TelemetrySnapshot
}

// Notifications exposes the live notification state.
type Notifications interface {
	State() models.NotificationState
}

// NotificationLog exposes the append-only transition log with filtering.
type NotificationLog interface {
	List(ctx context.Context, f LogFilter) ([]models.NotificationEvent, error)
}

// Viewer is the analysis view: selection, rendered surfaces and picking.
type Viewer interface {
	Select(ctx context.Context, sel Selection) (ViewState, <-chan struct{}, error)
	SetFrame(index int) (ViewState, <-chan struct{}, error)
	SetMode(mode string) (ViewState, <-chan struct{}, error)
	State() ViewState
	Evolution(ctx context.Context, dataset string) ([]models.EvolutionPoint, error)
	WriteRaster(w io.Writer, palette string, scale int) error
	Mesh() (*render.Mesh, error)
	Pick(pointer render.NDC, cam render.Camera) (render.PickResult, bool, error)
}

type Analysis interface {
	Analyze(ctx context.Context) (AnalysisResult, error)
}

type Settings interface {
	Get(ctx context.Context) (SettingsView, error)
	Update(ctx context.Context, cfg models.RemoteConfig) error
	SetCredential(ctx context.Context, key string) error
}

type Files interface {
	List(ctx context.Context, q FileQuery) ([]models.DataFile, error)
}

// Poller runs the background telemetry loop.
// Stop via context cancellation in main() for graceful shutdown.
type Poller interface {
	Run(ctx context.Context, tick time.Duration)
}

// LiveSource is the upstream part the poller reads from.
type LiveSource interface {
	Live(ctx context.Context) (models.LiveStatus, error)
	Alerts(ctx context.Context) ([]models.AlertRecord, error)
}

// UpstreamSource is everything the service layer reads from the sensor API.
// Implemented by *upstream.Client.
type UpstreamSource interface {
	LiveSource
	FrameSource
	ConfigSource
	FileLister
}

// Config carries the tunables read from configuration.
type Config struct {
	Alerts            AlertConfig
	SyntheticFallback bool
	FetchTimeout      time.Duration
	SigningKey        string
	TokenTTL          time.Duration
	AIAPIKey          string
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Telemetry
	Notifications
	NotificationLog
	Viewer
	Analysis
	Settings
	Files
	Poller
}

// NewService wires the repositories, the upstream client and the AI
// generator into concrete services.
func NewService(repos *repository.Repository, source UpstreamSource, gen Generator, cfg Config, log *logger.Logger) *Service {
	telemetry := NewTelemetryService()
	notifier := NewNotifierService(cfg.Alerts, repos.Notifications)
	frames := NewFrameSync(source, cfg.FetchTimeout, cfg.SyntheticFallback)
	settings := NewSettingsService(source, repos.Settings, cfg.AIAPIKey)

	return &Service{
		Authorization:   NewAuthService(repos.Operators, cfg.SigningKey, cfg.TokenTTL),
		Telemetry:       telemetry,
		Notifications:   notifier,
		NotificationLog: NewNotificationLogService(repos.Notifications),
		Viewer:          NewViewerService(frames, source),
		Analysis:        NewAnalysisService(frames, settings, gen),
		Settings:        settings,
		Files:           NewFilesService(source),
		Poller:          NewPollerService(source, telemetry, notifier, log.Named("poller")),
	}
}
