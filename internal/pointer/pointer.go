// Package pointer synthesizes mouse events. Points are in flipped global
// coordinates: origin at the top-left of the main display.
package pointer

import "github.com/pkg/errors"

// ErrUnsupportedPlatform is returned outside macOS.
var ErrUnsupportedPlatform = errors.New("pointer events are only available on macOS")
