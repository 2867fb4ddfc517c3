package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thermal_sentinel/internal/models"
)

// liveResponse is the dashboard payload: last poll plus notification state.
type liveResponse struct {
	Telemetry    models.TelemetrySnapshot `json:"telemetry"`
	Notification models.NotificationState `json:"notification"`
}

func (h *Handler) live() liveResponse {
	return liveResponse{
		Telemetry:    h.services.Telemetry.Snapshot(),
		Notification: h.services.Notifications.State(),
	}
}

// @Summary      Live telemetry
// @Description  Latest completed poll (status and 15-point history) and the current notification.
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  liveResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/live [get]
// @Security     BearerAuth
func (h *Handler) getLive(c *gin.Context) {
	c.JSON(http.StatusOK, h.live())
}

// @Summary      Notification state
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  models.NotificationState
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/notifications/state [get]
// @Security     BearerAuth
func (h *Handler) getNotificationState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Notifications.State())
}
