package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/repository"
)

// ErrInvalidConfig wraps every config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SettingsView is what operators see: the scanner config, where it came
// from, and whether an AI credential is stored (never the credential).
type SettingsView struct {
	Remote        models.RemoteConfig `json:"remote"`
	Source        string              `json:"source"` // "upstream" | "cache"
	CredentialSet bool                `json:"credential_set"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Warning       string              `json:"warning,omitempty"`
}

// ConfigSource is the upstream config endpoint pair.
type ConfigSource interface {
	Config(ctx context.Context) (models.RemoteConfig, error)
	UpdateConfig(ctx context.Context, cfg models.RemoteConfig) error
}

type SettingsService struct {
	source      ConfigSource
	repo        repository.SettingsRepo
	fallbackKey string
}

// NewSettingsService builds the service. fallbackKey is used when no
// credential has been stored through the API.
func NewSettingsService(source ConfigSource, repo repository.SettingsRepo, fallbackKey string) *SettingsService {
	return &SettingsService{source: source, repo: repo, fallbackKey: strings.TrimSpace(fallbackKey)}
}

// Get prefers the live upstream config and refreshes the local copy; when
// upstream is unreachable the cached copy is served with a warning.
func (s *SettingsService) Get(ctx context.Context) (SettingsView, error) {
	cached, err := s.repo.Load(ctx)
	if err != nil {
		return SettingsView{}, err
	}

	remote, upErr := s.source.Config(ctx)
	if upErr != nil {
		if cached.ID == 0 {
			return SettingsView{}, fmt.Errorf("fetch upstream config: %w", upErr)
		}
		return SettingsView{
			Remote:        cached.Remote,
			Source:        "cache",
			CredentialSet: s.hasCredential(cached),
			UpdatedAt:     cached.UpdatedAt,
			Warning:       "upstream unavailable: " + upErr.Error(),
		}, nil
	}

	cached.Remote = remote
	cached.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cached); err != nil {
		return SettingsView{}, err
	}
	return SettingsView{
		Remote:        remote,
		Source:        "upstream",
		CredentialSet: s.hasCredential(cached),
		UpdatedAt:     cached.UpdatedAt,
	}, nil
}

// Update validates cfg, pushes it upstream and caches it.
func (s *SettingsService) Update(ctx context.Context, cfg models.RemoteConfig) error {
	if err := validateRemoteConfig(cfg); err != nil {
		return err
	}
	if err := s.source.UpdateConfig(ctx, cfg); err != nil {
		return fmt.Errorf("push upstream config: %w", err)
	}

	cached, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	cached.Remote = cfg
	cached.UpdatedAt = time.Now().UTC()
	return s.repo.Save(ctx, cached)
}

// SetCredential stores the AI credential. An empty key clears it.
func (s *SettingsService) SetCredential(ctx context.Context, key string) error {
	cached, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	cached.AIAPIKey = strings.TrimSpace(key)
	cached.UpdatedAt = time.Now().UTC()
	return s.repo.Save(ctx, cached)
}

// Credential returns the stored AI credential, or the configured fallback.
func (s *SettingsService) Credential(ctx context.Context) (string, error) {
	cached, err := s.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if cached.AIAPIKey != "" {
		return cached.AIAPIKey, nil
	}
	return s.fallbackKey, nil
}

func (s *SettingsService) hasCredential(st models.Settings) bool {
	return st.AIAPIKey != "" || s.fallbackKey != ""
}

func validateRemoteConfig(cfg models.RemoteConfig) error {
	if cfg.MaxTempTrigger <= 0 {
		return fmt.Errorf("%w: max_temp_trigger must be > 0", ErrInvalidConfig)
	}
	if cfg.ScanWaitTimeSec < 0 {
		return fmt.Errorf("%w: scan_wait_time_sec must be >= 0", ErrInvalidConfig)
	}
	if cfg.PanStepDegrees < 0 {
		return fmt.Errorf("%w: pan_step_degrees must be >= 0", ErrInvalidConfig)
	}
	if cfg.AlertEmail != "" {
		if _, err := mail.ParseAddress(cfg.AlertEmail); err != nil {
			return fmt.Errorf("%w: alert_email: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
