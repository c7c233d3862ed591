package monitor

// Point is a pixel coordinate. Which axis convention applies (flipped or
// unflipped) depends on the method that produced it.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Size is a pixel extent.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Rect is an edge-based rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// Contains reports whether (x, y) lies inside r, origin inclusive and far
// edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return r.Left <= x && x < r.Right && r.Top <= y && y < r.Bottom
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// DisplayMode is one resolution and refresh rate a display can be driven at.
type DisplayMode struct {
	Width     int     `json:"width" yaml:"width"`
	Height    int     `json:"height" yaml:"height"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

// ScreenValue is a snapshot of everything known about one monitor.
type ScreenValue struct {
	ID          uint32  `json:"id" yaml:"id"`
	IsPrimary   bool    `json:"is_primary" yaml:"is_primary"`
	Position    Point   `json:"pos" yaml:"pos"`
	Size        Size    `json:"size" yaml:"size"`
	WorkArea    Rect    `json:"workarea" yaml:"workarea"`
	Scale       [2]int  `json:"scale" yaml:"scale"`
	DPI         [2]int  `json:"dpi" yaml:"dpi"`
	Orientation int     `json:"orientation" yaml:"orientation"`
	Frequency   float64 `json:"frequency" yaml:"frequency"`
	ColorDepth  int     `json:"colordepth" yaml:"colordepth"`
}

// Monitor is one entry produced by Adapter.Monitors.
type Monitor struct {
	Name      string
	DisplayID uint32
	Screen    NativeScreen
}
