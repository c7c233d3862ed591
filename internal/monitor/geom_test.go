package monitor

import (
	"image"
	"testing"
)

func TestUnflipY(t *testing.T) {
	tests := []struct{ y, h, want int }{
		{0, 1080, 1080},
		{900, 982, 82},
		{1079, 1080, 1},
		{-500, 1080, -1580},
		{-1, 1080, -1081},
	}
	for _, tt := range tests {
		if got := unflipY(tt.y, tt.h); got != tt.want {
			t.Errorf("unflipY(%d, %d) = %d, want %d", tt.y, tt.h, got, tt.want)
		}
	}
}

func TestFlipYInvolution(t *testing.T) {
	for _, y := range []int{-1200, -1, 0, 1, 500, 981, 982, 4000} {
		if got := flipY(flipY(y, 982), 982); got != y {
			t.Errorf("flipY(flipY(%d)) = %d", y, got)
		}
	}
}

func TestFlipRect(t *testing.T) {
	tests := []struct {
		r    Rect
		h    int
		want image.Rectangle
	}{
		{Rect{0, 0, 1512, 982}, 982, image.Rect(0, 0, 1512, 982)},
		{Rect{1512, 0, 3432, 1080}, 982, image.Rect(1512, -98, 3432, 982)},
		{Rect{0, 982, 1920, 2062}, 982, image.Rect(0, -1080, 1920, 0)},
		{Rect{-1280, -1024, 0, 0}, 982, image.Rect(-1280, 982, 0, 2006)},
	}
	for _, tt := range tests {
		if got := flipRect(tt.r, tt.h); got != tt.want {
			t.Errorf("flipRect(%v, %d) = %v, want %v", tt.r, tt.h, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 30, Bottom: 40}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{29, 39, true},
		{30, 20, false},
		{10, 40, false},
		{9, 25, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
