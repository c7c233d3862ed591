//go:build darwin
// +build darwin

// This file posts Core Graphics mouse events.
package pointer

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

static int postMouse(CGEventType type, double x, double y) {
	CGEventRef ev = CGEventCreateMouseEvent(NULL, type, CGPointMake(x, y), kCGMouseButtonLeft);
	if (ev == NULL) {
		return 0;
	}
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 1;
}
*/
import "C"

import (
	"image"

	"github.com/pkg/errors"
)

func post(typ C.CGEventType, pt image.Point) error {
	if C.postMouse(typ, C.double(pt.X), C.double(pt.Y)) == 0 {
		return errors.Errorf("could not create mouse event at %v", pt)
	}
	return nil
}

// Move moves the pointer to pt without clicking.
func Move(pt image.Point) error {
	return post(C.kCGEventMouseMoved, pt)
}

// Click moves the pointer to pt and performs a left click there.
func Click(pt image.Point) error {
	if err := Move(pt); err != nil {
		return err
	}
	if err := post(C.kCGEventLeftMouseDown, pt); err != nil {
		return err
	}
	return post(C.kCGEventLeftMouseUp, pt)
}
