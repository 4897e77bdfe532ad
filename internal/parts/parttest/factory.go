package parttest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/parts"
)

// Displays is an in-memory display-surface provider. Windows without
// registered geometry report "unresolved".
type Displays struct {
	mu     sync.Mutex
	bounds map[entity.WindowID]entity.Rect
	zooms  map[entity.WindowID]float64
}

// NewDisplays creates an empty display provider.
func NewDisplays() *Displays {
	return &Displays{
		bounds: make(map[entity.WindowID]entity.Rect),
		zooms:  make(map[entity.WindowID]float64),
	}
}

// SetBounds registers a window's geometry.
func (d *Displays) SetBounds(id entity.WindowID, bounds entity.Rect) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bounds[id] = bounds
}

// SetZoom registers a window's zoom factor.
func (d *Displays) SetZoom(id entity.WindowID, zoom float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.zooms[id] = zoom
}

// Forget drops all geometry for a window.
func (d *Displays) Forget(id entity.WindowID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.bounds, id)
	delete(d.zooms, id)
}

func (d *Displays) Bounds(id entity.WindowID) (entity.Rect, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	bounds, ok := d.bounds[id]
	return bounds, ok
}

func (d *Displays) ZoomLevel(id entity.WindowID) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	zoom, ok := d.zooms[id]
	return zoom, ok
}

type partResources struct {
	once sync.Once
	fn   func()
}

func (r *partResources) Dispose() {
	r.once.Do(r.fn)
}

// Factory constructs in-memory parts. Auxiliary creation can be made to
// fail per call via FailAuxiliary, for partial-failure tests.
type Factory struct {
	// MainConfig configures the main part (default: one group, restores state).
	MainConfig Config
	// AuxGroups is the group count for auxiliary parts created without state.
	AuxGroups int
	// ManualSignals leaves auxiliary parts' latches unsettled.
	ManualSignals bool
	// Displays receives bounds/zoom from auxiliary creation options.
	Displays *Displays
	// FailAuxiliary, when set, is consulted before each auxiliary creation.
	FailAuxiliary func(opts parts.AuxiliaryPartOptions) error

	mu       sync.Mutex
	main     *Part
	aux      []*Part
	disposed []*Part
}

// NewFactory creates a factory with a restoring, single-group main part.
func NewFactory() *Factory {
	return &Factory{
		MainConfig: Config{Groups: 1, WillRestore: true},
		AuxGroups:  1,
		Displays:   NewDisplays(),
	}
}

// Main returns the created main part.
func (f *Factory) Main() *Part {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.main
}

// Auxiliaries returns every auxiliary part created so far.
func (f *Factory) Auxiliaries() []*Part {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Part(nil), f.aux...)
}

// DisposedParts returns parts whose resource bundles were disposed.
func (f *Factory) DisposedParts() []*Part {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Part(nil), f.disposed...)
}

func (f *Factory) CreateMainPart(_ context.Context) (parts.Part, parts.Disposable, error) {
	part := NewPart(entity.MainWindowID, f.MainConfig)

	f.mu.Lock()
	f.main = part
	f.mu.Unlock()

	return part, f.resourcesFor(part), nil
}

func (f *Factory) CreateAuxiliaryPart(_ context.Context, opts parts.AuxiliaryPartOptions) (parts.Part, parts.Disposable, error) {
	if f.FailAuxiliary != nil {
		if err := f.FailAuxiliary(opts); err != nil {
			return nil, nil, err
		}
	}

	cfg := Config{Groups: f.AuxGroups, ManualSignals: f.ManualSignals}
	if len(opts.State) > 0 {
		var state State
		if err := json.Unmarshal(opts.State, &state); err == nil && state.Groups > 0 {
			cfg.Groups = state.Groups
		}
	}

	windowID := entity.NewWindowID()
	part := NewPart(windowID, cfg)
	part.SetLabel(opts.Label)

	if f.Displays != nil {
		if opts.Bounds != nil {
			f.Displays.SetBounds(windowID, *opts.Bounds)
		}
		if opts.ZoomLevel != nil {
			f.Displays.SetZoom(windowID, *opts.ZoomLevel)
		}
	}

	f.mu.Lock()
	f.aux = append(f.aux, part)
	f.mu.Unlock()

	return part, f.resourcesFor(part), nil
}

func (f *Factory) resourcesFor(part *Part) parts.Disposable {
	return &partResources{fn: func() {
		if f.Displays != nil {
			f.Displays.Forget(part.WindowID())
		}
		f.mu.Lock()
		f.disposed = append(f.disposed, part)
		f.mu.Unlock()
	}}
}
