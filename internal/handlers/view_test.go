package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"thermal_sentinel/internal/render"
	"thermal_sentinel/internal/service"
)

func newViewRouter(v *mockViewer) http.Handler {
	return newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Viewer:        v,
	})
}

func TestViewHandlers_RequireAuth(t *testing.T) {
	r := newViewRouter(&mockViewer{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/view", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}
}

func TestViewHandlers_SelectDataset(t *testing.T) {
	v := &mockViewer{state: service.ViewState{Dataset: "cap_2.npz", FrameCount: 8, Mode: service.ModeHeat, Status: service.StatusReady}}
	r := newViewRouter(v)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/dataset?wait=true", bytes.NewBufferString(`{"alert_id":"a2"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("select status=%d, body=%s", w.Code, w.Body.String())
	}
	if v.lastSel.AlertID != "a2" {
		t.Fatalf("selection not passed through: %+v", v.lastSel)
	}
	var st service.ViewState
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if st.Dataset != "cap_2.npz" || st.Status != service.StatusReady || st.FrameCount != 8 {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestViewHandlers_SelectDatasetErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"empty selection", service.ErrNoSelection, http.StatusBadRequest},
		{"unknown alert", fmt.Errorf("%w: a9", service.ErrAlertNotFound), http.StatusNotFound},
		{"upstream down", errors.New("dial tcp: refused"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newViewRouter(&mockViewer{selectErr: tc.err})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/dataset", bytes.NewBufferString(`{"dataset":"x"}`)))
			if w.Code != tc.want {
				t.Fatalf("got %d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestViewHandlers_SetFrameAndMode(t *testing.T) {
	v := &mockViewer{state: service.ViewState{Dataset: "cap.npz", FrameIndex: 4}}
	r := newViewRouter(v)

	// index 0 is a valid frame and must not trip the required check
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/frame", bytes.NewBufferString(`{"index":0}`)))
	if w.Code != http.StatusOK || v.lastFrame != 0 {
		t.Fatalf("frame 0: status=%d lastFrame=%d", w.Code, v.lastFrame)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/frame", bytes.NewBufferString(`{}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing index: expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/mode", bytes.NewBufferString(`{"mode":"terrain"}`)))
	if w.Code != http.StatusOK || v.lastMode != "terrain" {
		t.Fatalf("mode: status=%d lastMode=%q", w.Code, v.lastMode)
	}

	v.modeErr = service.ErrInvalidViewMode
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/mode", bytes.NewBufferString(`{"mode":"sideways"}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid mode: expected 400, got %d", w.Code)
	}

	v.frameErr = service.ErrNoSelection
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/frame", bytes.NewBufferString(`{"index":3}`)))
	if w.Code != http.StatusConflict {
		t.Fatalf("frame without selection: expected 409, got %d", w.Code)
	}
}

func TestViewHandlers_Raster(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	v := &mockViewer{raster: png}
	r := newViewRouter(v)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/view/raster.png?palette=gray&scale=3", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("raster status=%d, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	if !bytes.Equal(w.Body.Bytes(), png) {
		t.Fatalf("body not passed through")
	}
	if v.lastPalette != "gray" || v.lastScale != 3 {
		t.Fatalf("params: palette=%q scale=%d", v.lastPalette, v.lastScale)
	}

	cases := []struct {
		name  string
		query string
		err   error
		want  int
	}{
		{"non-numeric scale", "?scale=big", nil, http.StatusBadRequest},
		{"scale out of range", "?scale=99", fmt.Errorf("%w: 99 not in [1,16]", render.ErrInvalidScale), http.StatusBadRequest},
		{"unknown palette", "?palette=rainbow", render.ErrInvalidPalette, http.StatusBadRequest},
		{"no frame yet", "", service.ErrFrameNotReady, http.StatusConflict},
		{"encode failure", "", errors.New("short write"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newViewRouter(&mockViewer{rasterErr: tc.err})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/view/raster.png"+tc.query, nil))
			if w.Code != tc.want {
				t.Fatalf("got %d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestViewHandlers_Mesh(t *testing.T) {
	mesh := &render.Mesh{
		Width:     2,
		Height:    1,
		MinTemp:   20,
		MaxTemp:   60,
		Vertices:  []r3.Vec{{X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 5}},
		Normals:   []r3.Vec{{Z: 1}, {Z: 1}},
		Colors:    []render.RGB{{R: 0, G: 0, B: 255}, {R: 255, G: 0, B: 0}},
		Triangles: []uint32{},
	}
	r := newViewRouter(&mockViewer{mesh: mesh})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/view/mesh", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("mesh status=%d, body=%s", w.Code, w.Body.String())
	}
	var out meshResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	wantPos := []float64{-1, 0, 0, 1, 0, 5}
	if len(out.Positions) != len(wantPos) {
		t.Fatalf("positions: %v", out.Positions)
	}
	for i := range wantPos {
		if out.Positions[i] != wantPos[i] {
			t.Fatalf("positions[%d]=%v want %v", i, out.Positions[i], wantPos[i])
		}
	}
	if len(out.Colors) != 6 || out.Colors[2] != 1 || out.Colors[3] != 1 {
		t.Fatalf("colors not normalized: %v", out.Colors)
	}

	r = newViewRouter(&mockViewer{meshErr: service.ErrFrameNotReady})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/view/mesh", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 without frame, got %d", w.Code)
	}
}

func TestViewHandlers_Pick(t *testing.T) {
	v := &mockViewer{
		pickHit: true,
		pickRes: render.PickResult{WorldPoint: r3.Vec{X: 1, Y: 2, Z: 3}, EstimatedTemp: 57.5, Row: 4, Col: 9},
	}
	r := newViewRouter(v)

	body := `{"x":0.25,"y":-0.5,"camera":{"position":{"x":0,"y":-30,"z":25},"target":{"x":0,"y":0,"z":0},"up":{"x":0,"y":0,"z":1},"fov_deg":45,"aspect":1.5}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/pick", bytes.NewBufferString(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("pick status=%d, body=%s", w.Code, w.Body.String())
	}
	if v.lastNDC != (render.NDC{X: 0.25, Y: -0.5}) {
		t.Fatalf("pointer: %+v", v.lastNDC)
	}
	if v.lastCamera.Position != (r3.Vec{Y: -30, Z: 25}) || v.lastCamera.FovDeg != 45 || v.lastCamera.Aspect != 1.5 {
		t.Fatalf("camera: %+v", v.lastCamera)
	}
	var out pickResponse
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if !out.Hit || out.WorldPoint == nil || out.WorldPoint.Z != 3 || out.EstimatedTemp != 57.5 || out.Row != 4 || out.Col != 9 {
		t.Fatalf("unexpected pick: %+v", out)
	}

	v.pickHit = false
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/view/pick", bytes.NewBufferString(body)))
	out = pickResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if w.Code != http.StatusOK || out.Hit || out.WorldPoint != nil {
		t.Fatalf("miss: status=%d body=%s", w.Code, w.Body.String())
	}
}
