package monitor

import "github.com/pkg/errors"

var (
	// ErrMonitorNotFound means no attached screen carries the requested name.
	ErrMonitorNotFound = errors.New("monitor not found")

	// ErrModeNotFound means the display does not report a mode with the
	// exact width, height and refresh rate requested.
	ErrModeNotFound = errors.New("display mode not supported")

	// ErrNotImplemented is returned by setters this platform has no
	// implementation for. They never change anything.
	ErrNotImplemented = errors.New("not implemented on this platform")

	// ErrUnsupportedPlatform is returned by NewPlatform outside macOS.
	ErrUnsupportedPlatform = errors.New("monitor control is only available on macOS")
)
