package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/render"
)

// ViewMode is what the analysis view currently shows.
type ViewMode string

const (
	ModeOverview ViewMode = "overview" // evolution chart only, no field needed
	ModeHeat     ViewMode = "heat"
	ModeGray     ViewMode = "gray"
	ModeTerrain  ViewMode = "terrain"
	ModeAI       ViewMode = "ai"
)

// needsField reports whether the mode renders the per-frame matrix.
func (m ViewMode) needsField() bool { return m != ModeOverview }

// ParseViewMode accepts the mode names case-insensitively.
func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeOverview, ModeHeat, ModeGray, ModeTerrain, ModeAI:
		return m, nil
	}
	return "", ErrInvalidViewMode
}

// FrameStatus is the lifecycle of the displayed field.
type FrameStatus string

const (
	StatusNoSelection FrameStatus = "no_selection"
	StatusLoading     FrameStatus = "loading"
	StatusReady       FrameStatus = "ready"
	StatusError       FrameStatus = "error"
)

var (
	ErrNoSelection     = errors.New("no dataset selected")
	ErrFrameNotReady   = errors.New("no frame loaded for the current selection")
	ErrInvalidViewMode = errors.New("invalid view mode: must be overview, heat, gray, terrain or ai")
)

const defaultFetchTimeout = 10 * time.Second

// FrameInfo summarizes the displayed field without its pixels.
type FrameInfo struct {
	FrameIndex int     `json:"frame_index"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	MinTemp    float64 `json:"min_temp"`
	MaxTemp    float64 `json:"max_temp"`
	AvgTemp    float64 `json:"avg_temp"`
	Synthetic  bool    `json:"synthetic"`
}

// ViewState is a point-in-time copy of the selection and displayed field.
type ViewState struct {
	Dataset    string              `json:"dataset,omitempty"`
	Alert      *models.AlertRecord `json:"alert,omitempty"`
	FrameIndex int                 `json:"frame_index"`
	FrameCount int                 `json:"frame_count"`
	Mode       ViewMode            `json:"mode"`
	Status     FrameStatus         `json:"status"`
	Displayed  *FrameInfo          `json:"displayed,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// FrameSource is the upstream part FrameSync reads from.
type FrameSource interface {
	Evolution(ctx context.Context, dataset string) ([]models.EvolutionPoint, error)
	Matrix(ctx context.Context, dataset string, frameIndex int) (models.ThermalFrame, error)
}

// meshSlot lazily builds the terrain for exactly one loaded frame.
type meshSlot struct {
	once sync.Once
	mesh *render.Mesh
}

// FrameSync owns the selected dataset, frame index and view mode, and the
// field currently displayed. Matrix fetches run in the background; a result
// is applied only if its (dataset, frame) still matches the selection when it
// arrives, so rapid frame changes never show a superseded frame.
type FrameSync struct {
	source    FrameSource
	timeout   time.Duration
	synthetic bool

	mu        sync.Mutex
	dataset   string
	alert     *models.AlertRecord
	frame     int
	mode      ViewMode
	evolution []models.EvolutionPoint
	status    FrameStatus
	field     *models.ThermalFrame
	loaded    int // frame index the displayed field was fetched for
	fieldFake bool
	errMsg    string
	mesh      *meshSlot

	// latest issued matrix fetch; older ones resolve as stale
	fetchGen     uint64
	fetching     bool
	fetchDataset string
	fetchFrame   int
	fetchDone    <-chan struct{}
}

// NewFrameSync builds a controller. With synthetic set, a failed matrix
// fetch is replaced by a generated frame instead of an error state.
func NewFrameSync(source FrameSource, fetchTimeout time.Duration, synthetic bool) *FrameSync {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &FrameSync{
		source:    source,
		timeout:   fetchTimeout,
		synthetic: synthetic,
		mode:      ModeOverview,
		status:    StatusNoSelection,
	}
}

// SelectDataset switches dataset, resetting the frame index to 0 and clearing
// the displayed field and error. The evolution sequence is fetched before
// returning; a failure there leaves an empty sequence. The returned channel
// closes when the matrix fetch, if any, has resolved.
func (s *FrameSync) SelectDataset(ctx context.Context, dataset string, alert *models.AlertRecord) (<-chan struct{}, error) {
	dataset = strings.TrimSpace(dataset)
	if dataset == "" {
		return nil, ErrNoSelection
	}

	s.mu.Lock()
	s.dataset = dataset
	s.alert = alert
	s.frame = 0
	s.evolution = nil
	s.clearFieldLocked()
	s.errMsg = ""
	s.status = StatusLoading
	s.mu.Unlock()

	evo, evoErr := s.source.Evolution(ctx, dataset)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset != dataset {
		// superseded while fetching
		return closedChan(), nil
	}
	if evoErr == nil {
		s.evolution = evo
	}
	if !s.mode.needsField() {
		s.status = StatusReady
		if evoErr != nil {
			s.errMsg = fmt.Sprintf("evolution unavailable: %v", evoErr)
		}
		return closedChan(), nil
	}
	return s.startFetchLocked(), nil
}

// SetFrame selects a frame index, clamped to the evolution bounds. The
// previous field stays displayed until the new one resolves.
func (s *FrameSync) SetFrame(index int) (int, <-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dataset == "" {
		return 0, nil, ErrNoSelection
	}
	index = clampFrame(index, len(s.evolution))
	if index == s.frame && s.fieldMatchesLocked() {
		return index, closedChan(), nil
	}
	s.frame = index
	if !s.mode.needsField() {
		// nothing to load until a field view is chosen again
		if s.status == StatusError {
			s.errMsg = ""
		}
		if s.status == StatusLoading || s.status == StatusError {
			s.status = StatusReady
		}
		return index, closedChan(), nil
	}
	if s.fetchingCurrentLocked() {
		return index, s.fetchDone, nil
	}
	return index, s.startFetchLocked(), nil
}

// SetMode changes the view mode, fetching the field if the new mode needs
// one and the current selection is not loaded.
func (s *FrameSync) SetMode(mode ViewMode) (<-chan struct{}, error) {
	if _, err := ParseViewMode(string(mode)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = mode
	if s.dataset == "" || !mode.needsField() || s.fieldMatchesLocked() {
		return closedChan(), nil
	}
	if s.fetchingCurrentLocked() {
		return s.fetchDone, nil
	}
	return s.startFetchLocked(), nil
}

// State returns a copy of the selection and display state.
func (s *FrameSync) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := ViewState{
		Dataset:    s.dataset,
		FrameIndex: s.frame,
		FrameCount: len(s.evolution),
		Mode:       s.mode,
		Status:     s.status,
		Error:      s.errMsg,
	}
	if s.alert != nil {
		a := *s.alert
		st.Alert = &a
	}
	if s.field != nil {
		st.Displayed = &FrameInfo{
			FrameIndex: s.loaded,
			Width:      s.field.Width,
			Height:     s.field.Height,
			MinTemp:    s.field.MinTemp,
			MaxTemp:    s.field.MaxTemp,
			AvgTemp:    s.field.AvgTemp(),
			Synthetic:  s.fieldFake,
		}
	}
	return st
}

// Evolution returns the per-frame summary of the selected dataset.
func (s *FrameSync) Evolution() []models.EvolutionPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.EvolutionPoint(nil), s.evolution...)
}

// Field returns the displayed field. Frames are immutable once received, so
// the returned value shares its pixel slice with the controller.
func (s *FrameSync) Field() (models.ThermalFrame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset == "" {
		return models.ThermalFrame{}, ErrNoSelection
	}
	if s.field == nil {
		return models.ThermalFrame{}, ErrFrameNotReady
	}
	return *s.field, nil
}

// Mesh returns the terrain for the displayed field, built once per field.
func (s *FrameSync) Mesh() (*render.Mesh, error) {
	s.mu.Lock()
	if s.dataset == "" {
		s.mu.Unlock()
		return nil, ErrNoSelection
	}
	if s.field == nil || s.mesh == nil {
		s.mu.Unlock()
		return nil, ErrFrameNotReady
	}
	field, slot := *s.field, s.mesh
	s.mu.Unlock()

	slot.once.Do(func() { slot.mesh = render.BuildMesh(field) })
	return slot.mesh, nil
}

// startFetchLocked issues a background fetch for the current selection.
func (s *FrameSync) startFetchLocked() <-chan struct{} {
	dataset, frame := s.dataset, s.frame
	s.status = StatusLoading
	done := make(chan struct{})

	s.fetchGen++
	gen := s.fetchGen
	s.fetching = true
	s.fetchDataset, s.fetchFrame = dataset, frame
	s.fetchDone = done

	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		f, err := s.source.Matrix(ctx, dataset, frame)
		fake := false
		if err != nil && s.synthetic {
			f, err, fake = SyntheticFrame(frame), nil, true
		}
		s.apply(gen, dataset, frame, f, fake, err)
	}()
	return done
}

func (s *FrameSync) apply(gen uint64, dataset string, frame int, f models.ThermalFrame, fake bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen == s.fetchGen {
		s.fetching = false
	}
	if s.dataset != dataset || s.frame != frame {
		if !s.fetching && !s.mode.needsField() && s.status == StatusLoading {
			s.status = StatusReady
		}
		return
	}
	if err != nil {
		s.clearFieldLocked()
		s.status = StatusError
		s.errMsg = fmt.Sprintf("frame %d unavailable: %v", frame, err)
		return
	}
	s.field = &f
	s.loaded = frame
	s.fieldFake = fake
	s.mesh = &meshSlot{}
	s.status = StatusReady
	s.errMsg = ""
}

func (s *FrameSync) fieldMatchesLocked() bool {
	return s.field != nil && s.loaded == s.frame && s.status == StatusReady
}

// fetchingCurrentLocked reports whether the latest fetch targets the live
// selection and has not resolved yet.
func (s *FrameSync) fetchingCurrentLocked() bool {
	return s.fetching && s.fetchDataset == s.dataset && s.fetchFrame == s.frame
}

func (s *FrameSync) clearFieldLocked() {
	s.field = nil
	s.fieldFake = false
	s.mesh = nil
}

// clampFrame bounds index to [0, n-1]; with n == 0 only index 0 is valid.
func clampFrame(index, n int) int {
	if index < 0 || n <= 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
