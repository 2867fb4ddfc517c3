package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gonum.org/v1/gonum/spatial/r3"

	"thermal_sentinel/internal/render"
	"thermal_sentinel/internal/service"
)

const (
	errSelectDataset = "failed to select dataset"
	errRenderRaster  = "failed to render raster"
	errInvalidScale  = "invalid scale"

	// upper bound for ?wait=true on view mutations
	maxFetchWait = 15 * time.Second
)

// selectRequest picks a dataset directly or through an alert.
type selectRequest struct {
	Dataset string `json:"dataset" example:"capture_2025-05-01_WTG-07.npz"`
	AlertID string `json:"alert_id,omitempty" example:"a-17"`
}

type frameRequest struct {
	Index *int `json:"index" binding:"required" example:"5"`
}

type viewModeRequest struct {
	Mode string `json:"mode" binding:"required" example:"terrain"`
}

type vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v vec3) vec() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func toVec3(v r3.Vec) vec3 { return vec3{X: v.X, Y: v.Y, Z: v.Z} }

type cameraRequest struct {
	Position vec3    `json:"position"`
	Target   vec3    `json:"target"`
	Up       vec3    `json:"up"`
	FovDeg   float64 `json:"fov_deg" example:"45"`
	Aspect   float64 `json:"aspect" example:"1.333"`
}

// pickRequest is a pointer in normalized device coordinates plus the camera
// the client rendered the terrain with.
type pickRequest struct {
	X      float64       `json:"x" example:"0.1"`
	Y      float64       `json:"y" example:"-0.25"`
	Camera cameraRequest `json:"camera"`
}

type pickResponse struct {
	Hit           bool    `json:"hit"`
	WorldPoint    *vec3   `json:"world_point,omitempty"`
	EstimatedTemp float64 `json:"estimated_temp"`
	Row           int     `json:"row"`
	Col           int     `json:"col"`
}

// meshResponse flattens the terrain into GPU-friendly arrays: three floats
// per position and normal, three [0,1] floats per color.
type meshResponse struct {
	Width     int                   `json:"width"`
	Height    int                   `json:"height"`
	MinTemp   float64               `json:"min_temp"`
	MaxTemp   float64               `json:"max_temp"`
	Positions []float64             `json:"positions"`
	Normals   []float64             `json:"normals"`
	Colors    []float64             `json:"colors"`
	Indices   []uint32              `json:"indices"`
	Reference render.ReferencePlane `json:"reference_plane"`
	Ground    render.GroundGrid     `json:"ground_grid"`
}

func newMeshResponse(m *render.Mesh) meshResponse {
	resp := meshResponse{
		Width:     m.Width,
		Height:    m.Height,
		MinTemp:   m.MinTemp,
		MaxTemp:   m.MaxTemp,
		Positions: make([]float64, 0, 3*len(m.Vertices)),
		Normals:   make([]float64, 0, 3*len(m.Normals)),
		Colors:    make([]float64, 0, 3*len(m.Colors)),
		Indices:   m.Triangles,
		Reference: m.Reference,
		Ground:    m.Ground,
	}
	for _, v := range m.Vertices {
		resp.Positions = append(resp.Positions, v.X, v.Y, v.Z)
	}
	for _, n := range m.Normals {
		resp.Normals = append(resp.Normals, n.X, n.Y, n.Z)
	}
	for _, c := range m.Colors {
		resp.Colors = append(resp.Colors, float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	}
	return resp
}

// viewErrorStatus maps viewer errors to HTTP codes.
func viewErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidViewMode),
		errors.Is(err, render.ErrInvalidPalette),
		errors.Is(err, render.ErrInvalidScale):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAlertNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoSelection),
		errors.Is(err, service.ErrFrameNotReady):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// respondWithView optionally waits for the fetch started by a mutation
// (?wait=true) and replies with the current view state.
func (h *Handler) respondWithView(c *gin.Context, done <-chan struct{}) {
	if wait, _ := strconv.ParseBool(c.Query("wait")); wait && done != nil {
		timer := time.NewTimer(maxFetchWait)
		defer timer.Stop()
		select {
		case <-done:
		case <-timer.C:
		case <-c.Request.Context().Done():
		}
	}
	c.JSON(http.StatusOK, h.services.Viewer.State())
}

// @Summary      Get view state
// @Tags         view
// @Produce      json
// @Success      200  {object}  service.ViewState
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/view [get]
// @Security     BearerAuth
func (h *Handler) getView(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Viewer.State())
}

// @Summary      Select dataset
// @Description  Selects a dataset directly or through an alert id. The frame is fetched in the background; pass wait=true to block until it resolves.
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body      selectRequest  true   "Selection"
// @Param        wait  query     bool           false  "Wait for the frame fetch"
// @Success      200   {object}  service.ViewState
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/v1/view/dataset [post]
// @Security     BearerAuth
func (h *Handler) selectDataset(c *gin.Context) {
	var req selectRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	_, done, err := h.services.Viewer.Select(c.Request.Context(), service.Selection{
		Dataset: req.Dataset,
		AlertID: req.AlertID,
	})
	if err != nil {
		code := viewErrorStatus(err)
		if errors.Is(err, service.ErrNoSelection) {
			code = http.StatusBadRequest
		}
		msg := errSelectDataset
		if code != http.StatusBadGateway {
			msg = err.Error()
		}
		h.logAndJSONError(c, code, msg, "view_select_failed", err, "dataset", req.Dataset, "alert_id", req.AlertID)
		return
	}
	h.respondWithView(c, done)
}

// @Summary      Set frame
// @Description  Index is clamped to the dataset's frame range.
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body      frameRequest  true   "Frame index"
// @Param        wait  query     bool          false  "Wait for the frame fetch"
// @Success      200   {object}  service.ViewState
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/view/frame [post]
// @Security     BearerAuth
func (h *Handler) setFrame(c *gin.Context) {
	var req frameRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	_, done, err := h.services.Viewer.SetFrame(*req.Index)
	if err != nil {
		c.JSON(viewErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.respondWithView(c, done)
}

// @Summary      Set view mode
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body      viewModeRequest  true   "Mode: overview, heat, gray, terrain or ai"
// @Param        wait  query     bool             false  "Wait for the frame fetch"
// @Success      200   {object}  service.ViewState
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/view/mode [post]
// @Security     BearerAuth
func (h *Handler) setViewMode(c *gin.Context) {
	var req viewModeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	_, done, err := h.services.Viewer.SetMode(req.Mode)
	if err != nil {
		c.JSON(viewErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.respondWithView(c, done)
}

// @Summary      Render displayed frame
// @Description  Color-mapped PNG of the displayed field. Palette defaults to the view mode.
// @Tags         view
// @Produce      png
// @Param        palette  query  string  false  "heat or gray"
// @Param        scale    query  int     false  "Integer upscale factor"  default(1)
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/view/raster.png [get]
// @Security     BearerAuth
func (h *Handler) getRaster(c *gin.Context) {
	scale := 1
	if s := c.Query("scale"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidScale})
			return
		}
		scale = v
	}

	var buf bytes.Buffer
	if err := h.services.Viewer.WriteRaster(&buf, c.Query("palette"), scale); err != nil {
		code := viewErrorStatus(err)
		if code == http.StatusBadGateway {
			h.logAndJSONError(c, http.StatusInternalServerError, errRenderRaster, "view_raster_failed", err)
			return
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// @Summary      Terrain mesh of displayed frame
// @Tags         view
// @Produce      json
// @Success      200  {object}  meshResponse
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/view/mesh [get]
// @Security     BearerAuth
func (h *Handler) getMesh(c *gin.Context) {
	mesh, err := h.services.Viewer.Mesh()
	if err != nil {
		c.JSON(viewErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newMeshResponse(mesh))
}

// @Summary      Pick terrain point
// @Description  Casts a ray through the pointer and returns the temperature under it.
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body      pickRequest  true  "Pointer and camera"
// @Success      200   {object}  pickResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/view/pick [post]
// @Security     BearerAuth
func (h *Handler) pick(c *gin.Context) {
	var req pickRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	cam := render.Camera{
		Position: req.Camera.Position.vec(),
		Target:   req.Camera.Target.vec(),
		Up:       req.Camera.Up.vec(),
		FovDeg:   req.Camera.FovDeg,
		Aspect:   req.Camera.Aspect,
	}
	res, hit, err := h.services.Viewer.Pick(render.NDC{X: req.X, Y: req.Y}, cam)
	if err != nil {
		c.JSON(viewErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !hit {
		c.JSON(http.StatusOK, pickResponse{})
		return
	}
	wp := toVec3(res.WorldPoint)
	c.JSON(http.StatusOK, pickResponse{
		Hit:           true,
		WorldPoint:    &wp,
		EstimatedTemp: res.EstimatedTemp,
		Row:           res.Row,
		Col:           res.Col,
	})
}
