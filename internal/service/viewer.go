package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/render"
)

var ErrAlertNotFound = errors.New("alert not found")

// ViewerService exposes the analysis view: selection, the rendered surfaces
// of the displayed field and pointer picking on its terrain.
type ViewerService struct {
	frames *FrameSync
	source UpstreamSource
}

func NewViewerService(frames *FrameSync, source UpstreamSource) *ViewerService {
	return &ViewerService{frames: frames, source: source}
}

// Select loads a dataset. When sel.AlertID is set the dataset comes from that
// alert, which also becomes the context for analysis prompts.
func (s *ViewerService) Select(ctx context.Context, sel Selection) (ViewState, <-chan struct{}, error) {
	dataset := strings.TrimSpace(sel.Dataset)
	var alert *models.AlertRecord

	if id := strings.TrimSpace(sel.AlertID); id != "" {
		a, err := s.findAlert(ctx, id)
		if err != nil {
			return ViewState{}, nil, err
		}
		alert = &a
		dataset = a.DatasetPath
	}

	done, err := s.frames.SelectDataset(ctx, dataset, alert)
	if err != nil {
		return ViewState{}, nil, err
	}
	return s.frames.State(), done, nil
}

func (s *ViewerService) SetFrame(index int) (ViewState, <-chan struct{}, error) {
	_, done, err := s.frames.SetFrame(index)
	if err != nil {
		return ViewState{}, nil, err
	}
	return s.frames.State(), done, nil
}

func (s *ViewerService) SetMode(mode string) (ViewState, <-chan struct{}, error) {
	m, err := ParseViewMode(mode)
	if err != nil {
		return ViewState{}, nil, err
	}
	done, err := s.frames.SetMode(m)
	if err != nil {
		return ViewState{}, nil, err
	}
	return s.frames.State(), done, nil
}

func (s *ViewerService) State() ViewState { return s.frames.State() }

// Evolution returns the per-frame summary of any dataset, independent of the
// current selection.
func (s *ViewerService) Evolution(ctx context.Context, dataset string) ([]models.EvolutionPoint, error) {
	dataset = strings.TrimSpace(dataset)
	if dataset == "" {
		return nil, ErrNoSelection
	}
	if st := s.frames.State(); st.Dataset == dataset && st.FrameCount > 0 {
		return s.frames.Evolution(), nil
	}
	return s.source.Evolution(ctx, dataset)
}

// WriteRaster encodes the displayed field as PNG. An empty palette follows the
// view mode: gray in gray mode, heat otherwise.
func (s *ViewerService) WriteRaster(w io.Writer, palette string, scale int) error {
	p, err := s.paletteFor(palette)
	if err != nil {
		return err
	}
	f, err := s.frames.Field()
	if err != nil {
		return err
	}
	return render.EncodePNG(w, f, p, scale)
}

func (s *ViewerService) Mesh() (*render.Mesh, error) {
	return s.frames.Mesh()
}

// Pick resolves a pointer on the terrain of the displayed field. ok is false
// when the ray misses.
func (s *ViewerService) Pick(pointer render.NDC, cam render.Camera) (render.PickResult, bool, error) {
	mesh, err := s.frames.Mesh()
	if err != nil {
		return render.PickResult{}, false, err
	}
	res, ok := render.Pick(pointer, cam, mesh)
	return res, ok, nil
}

func (s *ViewerService) paletteFor(palette string) (render.Palette, error) {
	if strings.TrimSpace(palette) == "" && s.frames.State().Mode == ModeGray {
		return render.PaletteGray, nil
	}
	return render.ParsePalette(palette)
}

func (s *ViewerService) findAlert(ctx context.Context, id string) (models.AlertRecord, error) {
	alerts, err := s.source.Alerts(ctx)
	if err != nil {
		return models.AlertRecord{}, fmt.Errorf("list alerts: %w", err)
	}
	for _, a := range alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.AlertRecord{}, fmt.Errorf("%w: %s", ErrAlertNotFound, id)
}
