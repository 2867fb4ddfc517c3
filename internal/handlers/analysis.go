package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"thermal_sentinel/internal/service"
)

const errAnalysisFailed = "analysis failed"

// @Summary      AI incident analysis
// @Description  Asks the generative model for a short diagnosis of the selected alert or dataset. Requires an AI credential.
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  service.AnalysisResult
// @Failure      409  {object}  map[string]string
// @Failure      412  {object}  map[string]string  "credential not configured"
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/analysis [post]
// @Security     BearerAuth
func (h *Handler) analyze(c *gin.Context) {
	res, err := h.services.Analysis.Analyze(c.Request.Context())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, service.ErrMissingCredential):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNothingToAnalyze):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusBadGateway, errAnalysisFailed, "analysis_failed", err, "operator_id", operatorID(c))
	}
}
