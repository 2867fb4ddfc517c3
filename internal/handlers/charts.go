package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"thermal_sentinel/internal/charts"
	"thermal_sentinel/internal/upstream"
)

const (
	errRenderChart   = "failed to render chart"
	errLoadEvolution = "failed to load evolution"
)

// evolutionErrorStatus maps upstream evolution failures to HTTP codes.
func evolutionErrorStatus(err error) int {
	if errors.Is(err, upstream.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// @Summary      Peak temperature history chart
// @Description  Interactive HTML line chart of the last 15 alert peaks with the alert threshold marked.
// @Tags         charts
// @Produce      html
// @Success      200
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/charts/history [get]
// @Security     BearerAuth
func (h *Handler) historyChart(c *gin.Context) {
	snap := h.services.Telemetry.Snapshot()

	var buf bytes.Buffer
	if err := charts.HistoryHTML(&buf, snap.History, h.alertThreshold); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderChart, "history_chart_failed", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// @Summary      Dataset evolution
// @Tags         charts
// @Produce      json
// @Param        dataset  path      string  true  "Dataset path"
// @Success      200      {array}   models.EvolutionPoint
// @Failure      404      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /api/v1/datasets/{dataset}/evolution [get]
// @Security     BearerAuth
func (h *Handler) getEvolution(c *gin.Context) {
	dataset := c.Param("dataset")
	points, err := h.services.Viewer.Evolution(c.Request.Context(), dataset)
	if err != nil {
		h.logAndJSONError(c, evolutionErrorStatus(err), errLoadEvolution, "evolution_fetch_failed", err, "dataset", dataset)
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary      Dataset evolution chart
// @Description  PNG of per-frame max and average temperature.
// @Tags         charts
// @Produce      png
// @Param        dataset  path  string  true  "Dataset path"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/datasets/{dataset}/evolution/chart.png [get]
// @Security     BearerAuth
func (h *Handler) evolutionChart(c *gin.Context) {
	dataset := c.Param("dataset")
	points, err := h.services.Viewer.Evolution(c.Request.Context(), dataset)
	if err != nil {
		h.logAndJSONError(c, evolutionErrorStatus(err), errLoadEvolution, "evolution_fetch_failed", err, "dataset", dataset)
		return
	}

	var buf bytes.Buffer
	if err := charts.EvolutionPNG(&buf, dataset, points); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderChart, "evolution_chart_failed", err, "dataset", dataset)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
