package monitor

import "github.com/pkg/errors"

// fakePlatform is an in-memory window server.
type fakePlatform struct {
	screens  []NativeScreen
	main     uint32
	rotation map[uint32]float64
	depth    map[uint32]int
	current  map[uint32]int // index into modes
	modes    map[uint32][]NativeMode
	mouseX   float64
	mouseY   float64
	setCalls int
	setErr   error
}

func (f *fakePlatform) Screens() []NativeScreen {
	// Copy so callers cannot alias our state.
	return append([]NativeScreen(nil), f.screens...)
}

func (f *fakePlatform) MainDisplayID() uint32 { return f.main }

func (f *fakePlatform) IsMain(id uint32) bool { return id == f.main }

func (f *fakePlatform) Rotation(id uint32) float64 { return f.rotation[id] }

func (f *fakePlatform) BitsPerPixel(id uint32) int { return f.depth[id] }

func (f *fakePlatform) CurrentMode(id uint32) (NativeMode, bool) {
	i, ok := f.current[id]
	if !ok {
		return NativeMode{}, false
	}
	return f.modes[id][i], true
}

func (f *fakePlatform) AllModes(id uint32) []NativeMode {
	return append([]NativeMode(nil), f.modes[id]...)
}

func (f *fakePlatform) SetMode(id uint32, mode NativeMode) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	modes := f.modes[id]
	if mode.Index < 0 || mode.Index >= len(modes) || modes[mode.Index] != mode {
		return errors.New("mode list changed")
	}
	f.current[id] = mode.Index
	return nil
}

func (f *fakePlatform) MouseLocation() (float64, float64) { return f.mouseX, f.mouseY }

func modeList(modes ...DisplayMode) []NativeMode {
	out := make([]NativeMode, len(modes))
	for i, m := range modes {
		out[i] = NativeMode{Index: i, Width: m.Width, Height: m.Height, RefreshRate: m.Frequency}
	}
	return out
}

// twoScreens is a Retina built-in display with an external 1080p display
// to its right.
func twoScreens() *fakePlatform {
	return &fakePlatform{
		screens: []NativeScreen{
			{
				DisplayID:          1,
				LocalizedName:      "Built-in Retina Display",
				Frame:              Frame{X: 0, Y: 0, Width: 1512, Height: 982},
				VisibleFrame:       Frame{X: 0, Y: 70, Width: 1512, Height: 875},
				BackingScaleFactor: 2,
				ResolutionX:        144,
				ResolutionY:        144,
			},
			{
				DisplayID:          69732128,
				Frame:              Frame{X: 1512, Y: 0, Width: 1920, Height: 1080},
				VisibleFrame:       Frame{X: 1512, Y: 0, Width: 1920, Height: 1053},
				BackingScaleFactor: 1,
				ResolutionX:        72,
				ResolutionY:        72,
			},
		},
		main:     1,
		rotation: map[uint32]float64{1: 0, 69732128: 90},
		depth:    map[uint32]int{1: 32, 69732128: 30},
		current:  map[uint32]int{1: 0, 69732128: 1},
		modes: map[uint32][]NativeMode{
			1: modeList(DisplayMode{Width: 1512, Height: 982, Frequency: 120}),
			69732128: modeList(
				DisplayMode{Width: 1280, Height: 720, Frequency: 60},
				DisplayMode{Width: 1920, Height: 1080, Frequency: 60},
				DisplayMode{Width: 1920, Height: 1080, Frequency: 50},
			),
		},
	}
}
