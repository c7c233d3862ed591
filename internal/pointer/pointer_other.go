//go:build !darwin
// +build !darwin

package pointer

import "image"

// Move moves the pointer to pt without clicking.
func Move(pt image.Point) error {
	return ErrUnsupportedPlatform
}

// Click moves the pointer to pt and performs a left click there.
func Click(pt image.Point) error {
	return ErrUnsupportedPlatform
}
