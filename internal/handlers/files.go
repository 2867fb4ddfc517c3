package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thermal_sentinel/internal/service"
)

// @Summary      List downloadable files
// @Tags         files
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive name filter"
// @Param        type    query     string  false  "File type"  Enums(capture,log)
// @Success      200     {object}  map[string]interface{}  "count, files"
// @Failure      502     {object}  map[string]string
// @Router       /api/v1/files [get]
// @Security     BearerAuth
func (h *Handler) listFiles(c *gin.Context) {
	files, err := h.services.Files.List(c.Request.Context(), service.FileQuery{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusBadGateway, "failed to list files", "files_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(files),
		"files": files,
	})
}
