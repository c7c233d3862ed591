package locate

import (
	"image"
	"image/draw"

	"github.com/kbinani/screenshot"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Capture grabs bounds, given in flipped global coordinates. A non-zero
// width scales the image down to that width, keeping the aspect ratio.
func Capture(bounds image.Rectangle, width uint) (*image.RGBA, error) {
	if bounds.Empty() {
		return nil, errors.Errorf("invalid capture bounds %v", bounds)
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, errors.Wrapf(err, "capture %v", bounds)
	}
	if width == 0 || int(width) >= img.Bounds().Dx() {
		return img, nil
	}

	small := resize.Resize(width, 0, img, resize.Lanczos3)
	if rgba, ok := small.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(small.Bounds())
	draw.Draw(rgba, rgba.Bounds(), small, small.Bounds().Min, draw.Src)
	return rgba, nil
}
