package monitor

import "image"

// unflipY reflects y against a screen of height h, moving the origin from
// the bottom-left to the top-left of that screen.
func unflipY(y, h int) int {
	sign := 1
	if y < 0 {
		sign = -1
	}
	abs := y
	if abs < 0 {
		abs = -abs
	}
	return sign*h - abs
}

// flipY converts a pixel row between the flipped global space and the
// unflipped space anchored on a primary screen of height h. The mapping is
// its own inverse.
func flipY(y, h int) int {
	return h - 1 - y
}

// flipRect converts r from unflipped edges to a flipped image.Rectangle.
func flipRect(r Rect, h int) image.Rectangle {
	return image.Rect(r.Left, h-r.Bottom, r.Right, h-r.Top)
}
