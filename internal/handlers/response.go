package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// logAndJSONError writes {"error": userMsg}. Server-side failures are logged
// at error level, client mistakes at warn.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "status", httpCode, "path", c.FullPath()}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Warnw(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

type healthResponse struct {
	Status     string     `json:"status"`
	LastPollAt *time.Time `json:"last_poll_at,omitempty"`
	PollError  string     `json:"poll_error,omitempty"`
}

// @Summary      Health check
// @Description  Always 200 while the process serves; status is "degraded" when the last poll failed.
// @Tags         system
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	resp := healthResponse{Status: statusOK}
	if h.services != nil && h.services.Telemetry != nil {
		snap := h.services.Telemetry.Snapshot()
		if !snap.PolledAt.IsZero() {
			at := snap.PolledAt
			resp.LastPollAt = &at
		}
		if snap.LastError != "" {
			resp.Status = statusDegraded
			resp.PollError = snap.LastError
		}
	}
	c.JSON(http.StatusOK, resp)
}
