//go:build darwin
// +build darwin

// This file reads screens through AppKit and display modes through Core Graphics.
package monitor

/*
#cgo CFLAGS: -x objective-c -Wno-deprecated-declarations
#cgo LDFLAGS: -framework AppKit -framework CoreGraphics
#include <AppKit/AppKit.h>
#include <CoreGraphics/CoreGraphics.h>
#include <string.h>

typedef struct {
	uint32_t displayID;
	double x, y, w, h;
	double vx, vy, vw, vh;
	double scale;
	double dpiX, dpiY;
	char name[256];
} monScreen;

typedef struct {
	int width, height;
	double refresh;
} monMode;

static int monScreenCount(void) {
	@autoreleasepool {
		return (int)[[NSScreen screens] count];
	}
}

// monScreens fills out with at most max screens and returns how many were written.
static int monScreens(monScreen *out, int max) {
	@autoreleasepool {
		int n = 0;
		for (NSScreen *s in [NSScreen screens]) {
			if (n >= max) {
				break;
			}
			monScreen *m = &out[n++];
			memset(m, 0, sizeof(*m));

			NSDictionary *desc = [s deviceDescription];
			// NSScreenNumber is the CGDirectDisplayID.
			m->displayID = [[desc objectForKey:@"NSScreenNumber"] unsignedIntValue];

			NSRect f = [s frame];
			m->x = f.origin.x; m->y = f.origin.y;
			m->w = f.size.width; m->h = f.size.height;
			NSRect v = [s visibleFrame];
			m->vx = v.origin.x; m->vy = v.origin.y;
			m->vw = v.size.width; m->vh = v.size.height;
			m->scale = [s backingScaleFactor];

			NSValue *res = [desc objectForKey:NSDeviceResolution];
			if (res != nil) {
				NSSize d = [res sizeValue];
				m->dpiX = d.width;
				m->dpiY = d.height;
			}

			// localizedName only exists on macOS 10.15 and later.
			if ([s respondsToSelector:@selector(localizedName)]) {
				NSString *name = [s localizedName];
				if (name != nil) {
					strlcpy(m->name, [name UTF8String], sizeof(m->name));
				}
			}
		}
		return n;
	}
}

static int monCurrentMode(uint32_t id, monMode *out) {
	CGDisplayModeRef mode = CGDisplayCopyDisplayMode(id);
	if (mode == NULL) {
		return 0;
	}
	out->width = (int)CGDisplayModeGetWidth(mode);
	out->height = (int)CGDisplayModeGetHeight(mode);
	out->refresh = CGDisplayModeGetRefreshRate(mode);
	CGDisplayModeRelease(mode);
	return 1;
}

static int monModeCount(uint32_t id) {
	CFArrayRef all = CGDisplayCopyAllDisplayModes(id, NULL);
	if (all == NULL) {
		return 0;
	}
	int n = (int)CFArrayGetCount(all);
	CFRelease(all);
	return n;
}

static int monAllModes(uint32_t id, monMode *out, int max) {
	CFArrayRef all = CGDisplayCopyAllDisplayModes(id, NULL);
	if (all == NULL) {
		return 0;
	}
	int n = (int)CFArrayGetCount(all);
	if (n > max) {
		n = max;
	}
	for (int i = 0; i < n; i++) {
		CGDisplayModeRef m = (CGDisplayModeRef)CFArrayGetValueAtIndex(all, i);
		out[i].width = (int)CGDisplayModeGetWidth(m);
		out[i].height = (int)CGDisplayModeGetHeight(m);
		out[i].refresh = CGDisplayModeGetRefreshRate(m);
	}
	CFRelease(all);
	return n;
}

// monSetMode switches to the mode at index, provided it still has the
// expected geometry. Returns -1 when the mode list changed underneath us,
// otherwise the CGError.
static int monSetMode(uint32_t id, int index, int width, int height, double refresh) {
	CFArrayRef all = CGDisplayCopyAllDisplayModes(id, NULL);
	if (all == NULL) {
		return -1;
	}
	int rc = -1;
	if (index >= 0 && index < CFArrayGetCount(all)) {
		CGDisplayModeRef m = (CGDisplayModeRef)CFArrayGetValueAtIndex(all, index);
		if ((int)CGDisplayModeGetWidth(m) == width &&
			(int)CGDisplayModeGetHeight(m) == height &&
			CGDisplayModeGetRefreshRate(m) == refresh) {
			rc = (int)CGDisplaySetDisplayMode(id, m, NULL);
		}
	}
	CFRelease(all);
	return rc;
}

// monBitsPerPixel derives the colour depth from the current mode's IOKit
// pixel encoding string.
static int monBitsPerPixel(uint32_t id) {
	CGDisplayModeRef mode = CGDisplayCopyDisplayMode(id);
	if (mode == NULL) {
		return 0;
	}
	CFStringRef enc = CGDisplayModeCopyPixelEncoding(mode);
	CGDisplayModeRelease(mode);
	if (enc == NULL) {
		return 0;
	}
	int bits = 0;
	if (CFStringCompare(enc, CFSTR("-16R16G16B16"), 0) == kCFCompareEqualTo) {
		bits = 64;
	} else if (CFStringCompare(enc, CFSTR("--RRRRRRRRRRGGGGGGGGGGBBBBBBBBBB"), 0) == kCFCompareEqualTo) {
		bits = 30;
	} else if (CFStringCompare(enc, CFSTR("--------RRRRRRRRGGGGGGGGBBBBBBBB"), 0) == kCFCompareEqualTo) {
		bits = 32;
	} else if (CFStringCompare(enc, CFSTR("-RRRRRGGGGGBBBBB"), 0) == kCFCompareEqualTo) {
		bits = 16;
	} else if (CFStringCompare(enc, CFSTR("PPPPPPPP"), 0) == kCFCompareEqualTo) {
		bits = 8;
	}
	CFRelease(enc);
	return bits;
}

static void monMouseLocation(double *x, double *y) {
	@autoreleasepool {
		NSPoint p = [NSEvent mouseLocation];
		*x = p.x;
		*y = p.y;
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/pkg/errors"
)

type darwinPlatform struct{}

// NewPlatform returns the AppKit/Core Graphics platform.
func NewPlatform() (Platform, error) {
	return darwinPlatform{}, nil
}

func (darwinPlatform) Screens() []NativeScreen {
	count := int(C.monScreenCount())
	if count == 0 {
		return nil
	}
	buf := make([]C.monScreen, count)
	n := int(C.monScreens(&buf[0], C.int(count)))

	screens := make([]NativeScreen, 0, n)
	for _, s := range buf[:n] {
		screens = append(screens, NativeScreen{
			DisplayID:          uint32(s.displayID),
			LocalizedName:      C.GoString((*C.char)(unsafe.Pointer(&s.name[0]))),
			Frame:              Frame{X: float64(s.x), Y: float64(s.y), Width: float64(s.w), Height: float64(s.h)},
			VisibleFrame:       Frame{X: float64(s.vx), Y: float64(s.vy), Width: float64(s.vw), Height: float64(s.vh)},
			BackingScaleFactor: float64(s.scale),
			ResolutionX:        float64(s.dpiX),
			ResolutionY:        float64(s.dpiY),
		})
	}
	return screens
}

func (darwinPlatform) MainDisplayID() uint32 {
	return uint32(C.CGMainDisplayID())
}

func (darwinPlatform) IsMain(id uint32) bool {
	return C.CGDisplayIsMain(C.CGDirectDisplayID(id)) != 0
}

func (darwinPlatform) Rotation(id uint32) float64 {
	return float64(C.CGDisplayRotation(C.CGDirectDisplayID(id)))
}

func (darwinPlatform) BitsPerPixel(id uint32) int {
	return int(C.monBitsPerPixel(C.uint32_t(id)))
}

func (darwinPlatform) CurrentMode(id uint32) (NativeMode, bool) {
	var m C.monMode
	if C.monCurrentMode(C.uint32_t(id), &m) == 0 {
		return NativeMode{}, false
	}
	return NativeMode{Index: -1, Width: int(m.width), Height: int(m.height), RefreshRate: float64(m.refresh)}, true
}

func (darwinPlatform) AllModes(id uint32) []NativeMode {
	count := int(C.monModeCount(C.uint32_t(id)))
	if count == 0 {
		return nil
	}
	buf := make([]C.monMode, count)
	n := int(C.monAllModes(C.uint32_t(id), &buf[0], C.int(count)))

	modes := make([]NativeMode, 0, n)
	for i, m := range buf[:n] {
		modes = append(modes, NativeMode{
			Index:       i,
			Width:       int(m.width),
			Height:      int(m.height),
			RefreshRate: float64(m.refresh),
		})
	}
	return modes
}

func (darwinPlatform) SetMode(id uint32, mode NativeMode) error {
	rc := C.monSetMode(C.uint32_t(id), C.int(mode.Index), C.int(mode.Width), C.int(mode.Height), C.double(mode.RefreshRate))
	switch {
	case rc == -1:
		return errors.New("display mode list changed")
	case rc != C.kCGErrorSuccess:
		return errors.Errorf("CGDisplaySetDisplayMode failed with CGError %d", int(rc))
	}
	return nil
}

func (darwinPlatform) MouseLocation() (x, y float64) {
	var cx, cy C.double
	C.monMouseLocation(&cx, &cy)
	return float64(cx), float64(cy)
}
