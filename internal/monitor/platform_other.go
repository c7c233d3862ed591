//go:build !darwin
// +build !darwin

package monitor

// NewPlatform always fails outside macOS.
func NewPlatform() (Platform, error) {
	return nil, ErrUnsupportedPlatform
}
