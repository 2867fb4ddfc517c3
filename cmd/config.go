package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"thermal_sentinel/internal/service"
)

const envPrefix = "THERMAL"

// setDefaults registers every key so env overrides work without a config file.
func setDefaults(v *viper.Viper) {
	def := service.DefaultAlertConfig()

	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "thermal_sentinel.db")
	v.SetDefault("log.level", "info")

	v.SetDefault("upstream.base_url", "http://localhost:5000/api")
	v.SetDefault("upstream.timeout", 10*time.Second)

	v.SetDefault("poll.interval", service.DefaultPollInterval)

	v.SetDefault("alerts.high", def.High)
	v.SetDefault("alerts.low", def.Low)
	v.SetDefault("alerts.cooldown", def.Cooldown)
	v.SetDefault("alerts.dispatch_delay", def.DispatchDelay)
	v.SetDefault("alerts.display", def.Display)
	v.SetDefault("alerts.recipient", def.Recipient)

	v.SetDefault("viewer.synthetic_fallback", false)
	v.SetDefault("viewer.fetch_timeout", 10*time.Second)

	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("ai.model", "")
	v.SetDefault("ai.api_key", "")
}

// loadConfig reads configs/config.yml (optional) and THERMAL_* env overrides,
// e.g. THERMAL_UPSTREAM_BASE_URL for upstream.base_url.
func loadConfig(v *viper.Viper) error {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// serviceConfig maps the loaded keys onto service.Config.
func serviceConfig(v *viper.Viper) service.Config {
	return service.Config{
		Alerts: service.AlertConfig{
			High:          v.GetFloat64("alerts.high"),
			Low:           v.GetFloat64("alerts.low"),
			Cooldown:      v.GetDuration("alerts.cooldown"),
			DispatchDelay: v.GetDuration("alerts.dispatch_delay"),
			Display:       v.GetDuration("alerts.display"),
			Recipient:     v.GetString("alerts.recipient"),
		},
		SyntheticFallback: v.GetBool("viewer.synthetic_fallback"),
		FetchTimeout:      v.GetDuration("viewer.fetch_timeout"),
		SigningKey:        v.GetString("auth.signing_key"),
		TokenTTL:          v.GetDuration("auth.token_ttl"),
		AIAPIKey:          v.GetString("ai.api_key"),
	}
}
