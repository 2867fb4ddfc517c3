package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/service"
)

const (
	errLoadSettings   = "failed to load settings"
	errSaveSettings   = "failed to save settings"
	errSaveCredential = "failed to store credential"
)

// SettingsRequest is the scanner configuration payload.
type SettingsRequest struct {
	MaxTempTrigger  float64 `json:"max_temp_trigger" example:"60"`
	ScanWaitTimeSec int     `json:"scan_wait_time_sec" example:"5"`
	SystemEnabled   bool    `json:"system_enabled" example:"true"`
	PanStepDegrees  float64 `json:"pan_step_degrees" example:"15"`
	AlertEmail      string  `json:"alert_email" example:"admin@sentinelcore.com"`
}

type credentialRequest struct {
	APIKey string `json:"api_key"`
}

// @Summary      Get settings
// @Description  Scanner config from upstream, or the cached copy with a warning when upstream is unreachable.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  service.SettingsView
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/settings [get]
// @Security     BearerAuth
func (h *Handler) getSettings(c *gin.Context) {
	v, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusBadGateway, errLoadSettings, "settings_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      SettingsRequest  true  "Scanner configuration"
// @Success      200   {object}  service.SettingsView
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/v1/settings [post]
// @Security     BearerAuth
func (h *Handler) updateSettings(c *gin.Context) {
	var req SettingsRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	ctx := c.Request.Context()
	err := h.services.Settings.Update(ctx, models.RemoteConfig{
		MaxTempTrigger:  req.MaxTempTrigger,
		ScanWaitTimeSec: req.ScanWaitTimeSec,
		SystemEnabled:   req.SystemEnabled,
		PanStepDegrees:  req.PanStepDegrees,
		AlertEmail:      req.AlertEmail,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidConfig) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusBadGateway, errSaveSettings, "settings_update_failed", err, "operator_id", operatorID(c))
		return
	}
	h.getSettings(c)
}

// @Summary      Store AI credential
// @Description  An empty api_key clears the stored credential. The key is never returned.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      credentialRequest  true  "Credential"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/settings/credential [put]
// @Security     BearerAuth
func (h *Handler) setCredential(c *gin.Context) {
	var req credentialRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if err := h.services.Settings.SetCredential(c.Request.Context(), req.APIKey); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveCredential, "credential_store_failed", err, "operator_id", operatorID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": strings.TrimSpace(req.APIKey) != ""})
}
