package monitor

// Frame is a native rectangle in points, origin at the bottom-left of the
// primary screen.
type Frame struct {
	X, Y          float64
	Width, Height float64
}

// NativeScreen is a copy of the attributes of one attached screen, taken
// when Platform.Screens was called.
type NativeScreen struct {
	DisplayID uint32
	// LocalizedName is empty when the OS does not provide one.
	LocalizedName      string
	Frame              Frame
	VisibleFrame       Frame
	BackingScaleFactor float64
	ResolutionX        float64
	ResolutionY        float64
}

// NativeMode is one entry of a display's mode list. Index is the position
// of the mode in the list returned by Platform.AllModes.
type NativeMode struct {
	Index       int
	Width       int
	Height      int
	RefreshRate float64
}

// Platform is the window-server surface the Adapter reads from and writes
// to. Implementations must not hand out anything that refers back to live
// native objects.
type Platform interface {
	// Screens lists attached screens, primary first.
	Screens() []NativeScreen
	MainDisplayID() uint32
	IsMain(id uint32) bool
	// Rotation is in degrees.
	Rotation(id uint32) float64
	BitsPerPixel(id uint32) int
	CurrentMode(id uint32) (NativeMode, bool)
	AllModes(id uint32) []NativeMode
	SetMode(id uint32, mode NativeMode) error
	// MouseLocation is unflipped (origin bottom-left).
	MouseLocation() (x, y float64)
}
