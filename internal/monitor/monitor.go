// Package monitor queries and changes monitor state on macOS: geometry,
// work area, scale, display modes and the mouse pointer position.
//
// Monitors are addressed by a composite name, "<localized name>_<display id>".
// An empty name always means the primary display. Every call re-reads live
// state from the window server; nothing is cached.
package monitor

import (
	"fmt"
	"image"
	"iter"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const fallbackName = "Display"

// Adapter translates monitor names into native screens and normalizes
// what it reads from them.
type Adapter struct {
	platform Platform
	log      *zap.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// New returns an Adapter backed by p.
func New(p Platform, opts ...Option) *Adapter {
	a := &Adapter{platform: p, log: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewSystem returns an Adapter backed by the native window server.
func NewSystem(opts ...Option) (*Adapter, error) {
	p, err := NewPlatform()
	if err != nil {
		return nil, err
	}
	return New(p, opts...), nil
}

func compositeName(s NativeScreen) string {
	label := s.LocalizedName
	if label == "" {
		label = fallbackName
	}
	return fmt.Sprintf("%s_%d", label, s.DisplayID)
}

// Monitors yields every attached screen, or only the first one named name
// when name is not empty. Each iteration re-reads the screen list.
func (a *Adapter) Monitors(name string) iter.Seq[Monitor] {
	return func(yield func(Monitor) bool) {
		for _, s := range a.platform.Screens() {
			n := compositeName(s)
			if name != "" && n != name {
				continue
			}
			if !yield(Monitor{Name: n, DisplayID: s.DisplayID, Screen: s}) {
				return
			}
			if name != "" {
				return
			}
		}
	}
}

// DisplayID resolves name to a display id. The main display id is returned
// for an empty name and 0 when nothing matches.
func (a *Adapter) DisplayID(name string) uint32 {
	if name == "" {
		return a.platform.MainDisplayID()
	}
	for m := range a.Monitors(name) {
		return m.DisplayID
	}
	a.log.Debug("no display id for monitor", zap.String("name", name))
	return 0
}

// screen finds the native screen for name, the primary one when name is
// empty.
func (a *Adapter) screen(name string) (NativeScreen, error) {
	if name == "" {
		screens := a.platform.Screens()
		if len(screens) == 0 {
			return NativeScreen{}, errors.Wrap(ErrMonitorNotFound, "no screens attached")
		}
		main := a.platform.MainDisplayID()
		for _, s := range screens {
			if s.DisplayID == main {
				return s, nil
			}
		}
		// Same id DisplayID("") reports, so every query agrees on the display.
		a.log.Debug("main display not attached", zap.Uint32("display", main))
		return NativeScreen{}, errors.Wrapf(ErrMonitorNotFound, "main display %d", main)
	}
	for m := range a.Monitors(name) {
		return m.Screen, nil
	}
	a.log.Debug("monitor not found", zap.String("name", name))
	return NativeScreen{}, errors.Wrapf(ErrMonitorNotFound, "monitor %q", name)
}

func frameRect(f Frame) Rect {
	x, y := int(f.X), int(f.Y)
	return Rect{Left: x, Top: y, Right: x + int(f.Width), Bottom: y + int(f.Height)}
}

// AllScreens returns a snapshot of every attached screen keyed by name.
func (a *Adapter) AllScreens() map[string]ScreenValue {
	result := make(map[string]ScreenValue)
	for m := range a.Monitors("") {
		s := m.Screen
		id := m.DisplayID
		scale := int(math.Round(s.BackingScaleFactor * 100))

		var freq float64
		if mode, ok := a.platform.CurrentMode(id); ok {
			freq = mode.RefreshRate
		}

		result[m.Name] = ScreenValue{
			ID:          id,
			IsPrimary:   a.platform.IsMain(id),
			Position:    Point{X: int(s.Frame.X), Y: int(s.Frame.Y)},
			Size:        Size{Width: int(s.Frame.Width), Height: int(s.Frame.Height)},
			WorkArea:    frameRect(s.VisibleFrame),
			Scale:       [2]int{scale, scale},
			DPI:         [2]int{int(s.ResolutionX), int(s.ResolutionY)},
			Orientation: int(a.platform.Rotation(id)),
			Frequency:   freq,
			ColorDepth:  a.platform.BitsPerPixel(id),
		}
	}
	return result
}

// Count returns the number of attached screens.
func (a *Adapter) Count() int {
	return len(a.platform.Screens())
}

// ScreenSize returns the full size of the monitor.
func (a *Adapter) ScreenSize(name string) (Size, error) {
	s, err := a.screen(name)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: int(s.Frame.Width), Height: int(s.Frame.Height)}, nil
}

// WorkArea returns the part of the monitor not covered by the menu bar or
// the Dock.
func (a *Adapter) WorkArea(name string) (Rect, error) {
	s, err := a.screen(name)
	if err != nil {
		return Rect{}, err
	}
	return frameRect(s.VisibleFrame), nil
}

// Position returns the origin of the monitor.
func (a *Adapter) Position(name string) (Point, error) {
	s, err := a.screen(name)
	if err != nil {
		return Point{}, err
	}
	return Point{X: int(s.Frame.X), Y: int(s.Frame.Y)}, nil
}

// Rect returns the monitor frame as edges.
func (a *Adapter) Rect(name string) (Rect, error) {
	s, err := a.screen(name)
	if err != nil {
		return Rect{}, err
	}
	return frameRect(s.Frame), nil
}

// NameAt returns the name of the monitor whose frame contains (x, y), or ""
// when none does. Where frames overlap the last screen in enumeration order
// wins.
func (a *Adapter) NameAt(x, y int) string {
	name := ""
	for m := range a.Monitors("") {
		if frameRect(m.Screen.Frame).Contains(x, y) {
			name = m.Name
		}
	}
	return name
}

func modeOf(m NativeMode) DisplayMode {
	return DisplayMode{Width: m.Width, Height: m.Height, Frequency: m.RefreshRate}
}

// CurrentMode returns the mode the monitor is currently driven at.
func (a *Adapter) CurrentMode(name string) (DisplayMode, error) {
	id := a.DisplayID(name)
	if id == 0 {
		return DisplayMode{}, errors.Wrapf(ErrMonitorNotFound, "monitor %q", name)
	}
	m, ok := a.platform.CurrentMode(id)
	if !ok {
		return DisplayMode{}, errors.Errorf("no current mode for display %d", id)
	}
	return modeOf(m), nil
}

// AllowedModes lists every mode the monitor supports.
func (a *Adapter) AllowedModes(name string) ([]DisplayMode, error) {
	id := a.DisplayID(name)
	if id == 0 {
		return nil, errors.Wrapf(ErrMonitorNotFound, "monitor %q", name)
	}
	native := a.platform.AllModes(id)
	modes := make([]DisplayMode, 0, len(native))
	for _, m := range native {
		modes = append(modes, modeOf(m))
	}
	return modes, nil
}

// ChangeMode switches the monitor to the supported mode exactly matching
// mode. The live configuration is left untouched when there is no match.
func (a *Adapter) ChangeMode(mode DisplayMode, name string) error {
	id := a.DisplayID(name)
	if id == 0 {
		return errors.Wrapf(ErrMonitorNotFound, "monitor %q", name)
	}
	for _, m := range a.platform.AllModes(id) {
		if modeOf(m) != mode {
			continue
		}
		if err := a.platform.SetMode(id, m); err != nil {
			return errors.Wrapf(err, "set mode on display %d", id)
		}
		a.log.Info("display mode changed",
			zap.Uint32("display", id),
			zap.Int("width", mode.Width),
			zap.Int("height", mode.Height),
			zap.Float64("frequency", mode.Frequency))
		return nil
	}
	return errors.Wrapf(ErrModeNotFound, "%dx%d@%g on display %d", mode.Width, mode.Height, mode.Frequency, id)
}

// ChangeScale has no effect on macOS.
func (a *Adapter) ChangeScale(scale int, name string) error {
	return errors.Wrap(ErrNotImplemented, "change scale")
}

// ChangeOrientation has no effect on macOS.
func (a *Adapter) ChangeOrientation(orientation int, name string) error {
	return errors.Wrap(ErrNotImplemented, "change orientation")
}

// ChangePosition has no effect on macOS.
func (a *Adapter) ChangePosition(x, y int, name string) error {
	return errors.Wrap(ErrNotImplemented, "change position")
}

// MousePosition returns the pointer location. The window server reports it
// with the origin at the bottom-left; with unflip set, y is reflected
// against the height of the screen containing the pointer so the origin is
// at the top-left. y passes through when no screen contains the pointer.
func (a *Adapter) MousePosition(unflip bool) Point {
	fx, fy := a.platform.MouseLocation()
	x, y := int(fx), int(fy)
	if !unflip {
		return Point{X: x, Y: y}
	}
	for _, s := range a.platform.Screens() {
		if frameRect(s.Frame).Contains(x, y) {
			y = unflipY(y, int(s.Frame.Height))
			break
		}
	}
	return Point{X: x, Y: y}
}

// VirtualBounds returns the union of every screen frame.
func (a *Adapter) VirtualBounds() (Rect, error) {
	screens := a.platform.Screens()
	if len(screens) == 0 {
		return Rect{}, errors.Wrap(ErrMonitorNotFound, "no screens attached")
	}
	bounds := frameRect(screens[0].Frame)
	for _, s := range screens[1:] {
		bounds = bounds.Union(frameRect(s.Frame))
	}
	return bounds, nil
}

// primaryHeight is the height of the screen whose bottom-left corner is the
// origin of the unflipped space.
func (a *Adapter) primaryHeight() (int, error) {
	s, err := a.screen("")
	if err != nil {
		return 0, err
	}
	return int(s.Frame.Height), nil
}

// GlobalBounds returns the monitor frame in flipped global coordinates,
// the space used by screen capture and synthesized mouse events.
func (a *Adapter) GlobalBounds(name string) (image.Rectangle, error) {
	r, err := a.Rect(name)
	if err != nil {
		return image.Rectangle{}, err
	}
	h, err := a.primaryHeight()
	if err != nil {
		return image.Rectangle{}, err
	}
	return flipRect(r, h), nil
}

// NameAtGlobal is NameAt for a point in flipped global coordinates.
func (a *Adapter) NameAtGlobal(x, y int) string {
	h, err := a.primaryHeight()
	if err != nil {
		return ""
	}
	return a.NameAt(x, flipY(y, h))
}
