// Package locate finds a template image on screen.
package locate

import (
	"image"

	"github.com/greysquirr3l/monctl/internal/monitor"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

// DefaultThreshold is the minimum normalized correlation accepted as a match.
const DefaultThreshold = 0.75

// ErrNoMatch means no monitor showed the template above the threshold.
var ErrNoMatch = errors.New("template not found on screen")

// Result is the best match found. Point is the centre of the match in
// flipped global coordinates.
type Result struct {
	Monitor string      `json:"monitor" yaml:"monitor"`
	Score   float32     `json:"score" yaml:"score"`
	Point   image.Point `json:"point" yaml:"point"`
}

// Matcher holds a loaded template. Close it when done.
type Matcher struct {
	template  gocv.Mat
	threshold float32
}

// NewMatcher loads the template at path.
func NewMatcher(path string, threshold float32) (*Matcher, error) {
	tmpl := gocv.IMRead(path, gocv.IMReadColor)
	if tmpl.Empty() {
		tmpl.Close()
		return nil, errors.Errorf("load template %s: empty or unreadable image", path)
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{template: tmpl, threshold: threshold}, nil
}

// Threshold is the minimum score Locator accepts.
func (m *Matcher) Threshold() float32 {
	return m.threshold
}

func (m *Matcher) Close() error {
	return m.template.Close()
}

// Match returns the best placement of the template in img, which was
// captured from bounds, as a centre point in global coordinates.
func (m *Matcher) Match(img *image.RGBA, bounds image.Rectangle) (image.Point, float32, error) {
	src, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return image.Point{}, 0, errors.Wrap(err, "convert capture")
	}
	defer src.Close()

	screen := gocv.NewMat()
	defer screen.Close()
	gocv.CvtColor(src, &screen, gocv.ColorRGBAToBGR)

	result := gocv.NewMat()
	defer result.Close()
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.MatchTemplate(screen, m.template, &result, gocv.TmCcoeffNormed, mask)

	_, maxVal, _, maxLoc := gocv.MinMaxLoc(result)
	size := image.Pt(m.template.Cols(), m.template.Rows())
	return toGlobal(maxLoc, size, img.Bounds().Size(), bounds), maxVal, nil
}

// toGlobal maps the top-left corner of a match in capture pixels to the
// centre of the match in global coordinates. The capture may have been
// resized, or taken at the backing scale, so it is scaled back to bounds.
func toGlobal(loc, tmpl, capture image.Point, bounds image.Rectangle) image.Point {
	cx := loc.X + tmpl.X/2
	cy := loc.Y + tmpl.Y/2
	scaleX := float64(bounds.Dx()) / float64(capture.X)
	scaleY := float64(bounds.Dy()) / float64(capture.Y)
	return image.Pt(bounds.Min.X+int(float64(cx)*scaleX), bounds.Min.Y+int(float64(cy)*scaleY))
}

// scanFunc captures bounds and returns the best match centre and its score.
type scanFunc func(bounds image.Rectangle) (image.Point, float32, error)

// Locator searches monitors for a template.
type Locator struct {
	monitors  *monitor.Adapter
	scan      scanFunc
	threshold float32
	log       *zap.Logger
}

// NewLocator returns a Locator. width is passed to Capture.
func NewLocator(monitors *monitor.Adapter, matcher *Matcher, width uint, log *zap.Logger) *Locator {
	if log == nil {
		log = zap.NewNop()
	}
	scan := func(bounds image.Rectangle) (image.Point, float32, error) {
		img, err := Capture(bounds, width)
		if err != nil {
			return image.Point{}, 0, err
		}
		return matcher.Match(img, bounds)
	}
	return &Locator{monitors: monitors, scan: scan, threshold: matcher.Threshold(), log: log}
}

// Find searches the named monitor, or every monitor when name is empty,
// and returns the best scoring match.
func (l *Locator) Find(name string) (Result, error) {
	var (
		best           Result
		found, scanned bool
	)
	for mon := range l.monitors.Monitors(name) {
		scanned = true
		bounds, err := l.monitors.GlobalBounds(mon.Name)
		if err != nil {
			return Result{}, err
		}
		res, ok, err := l.search(bounds)
		if err != nil {
			return Result{}, err
		}
		if ok && (!found || res.Score > best.Score) {
			best, found = res, true
		}
	}
	if !scanned && name != "" {
		return Result{}, errors.Wrapf(monitor.ErrMonitorNotFound, "monitor %q", name)
	}
	if !found {
		return Result{}, ErrNoMatch
	}
	return best, nil
}

// FindIn searches only bounds, given in flipped global coordinates.
func (l *Locator) FindIn(bounds image.Rectangle) (Result, error) {
	res, ok, err := l.search(bounds)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, ErrNoMatch
	}
	return res, nil
}

func (l *Locator) search(bounds image.Rectangle) (Result, bool, error) {
	pt, score, err := l.scan(bounds)
	if err != nil {
		return Result{}, false, err
	}
	ok := score >= l.threshold
	l.log.Debug("template search",
		zap.Stringer("bounds", bounds),
		zap.Float32("score", score),
		zap.Bool("match", ok))
	if !ok {
		return Result{}, false, nil
	}
	return Result{Monitor: l.monitors.NameAtGlobal(pt.X, pt.Y), Score: score, Point: pt}, true, nil
}
