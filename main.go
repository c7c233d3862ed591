// monctl queries and changes monitor settings on macOS.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/greysquirr3l/monctl/internal/locate"
	"github.com/greysquirr3l/monctl/internal/monitor"
	"github.com/greysquirr3l/monctl/internal/pointer"
)

var nameFlag = &cli.StringFlag{
	Name:    "name",
	Aliases: []string{"n"},
	Usage:   "monitor name as printed by list; empty means the primary monitor",
	EnvVars: []string{"MONCTL_MONITOR"},
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// app bundles what every command needs.
type app struct {
	log      *zap.Logger
	monitors *monitor.Adapter
	format   string
}

func setup(c *cli.Context) (*app, error) {
	log, err := newLogger(c.Bool("debug"))
	if err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	monitors, err := monitor.NewSystem(monitor.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &app{log: log, monitors: monitors, format: c.String("format")}, nil
}

// action adapts a handler that needs an app to a cli.ActionFunc.
func action(fn func(c *cli.Context, a *app) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, err := setup(c)
		if err != nil {
			return err
		}
		defer a.log.Sync() //nolint:errcheck
		return fn(c, a)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "monctl",
		Usage: "inspect and control monitors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "output format: text, json or yaml",
				EnvVars: []string{"MONCTL_FORMAT"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				EnvVars: []string{"MONCTL_DEBUG"},
			},
		},
		Before: func(c *cli.Context) error {
			return checkFormat(c.String("format"))
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print every attached monitor",
				Action: action(func(c *cli.Context, a *app) error {
					return render(c.App.Writer, a.format, a.monitors.AllScreens())
				}),
			},
			{
				Name:  "count",
				Usage: "print the number of attached monitors",
				Action: action(func(c *cli.Context, a *app) error {
					return render(c.App.Writer, a.format, a.monitors.Count())
				}),
			},
			{
				Name:  "bounds",
				Usage: "print the rectangle enclosing every monitor",
				Action: action(func(c *cli.Context, a *app) error {
					r, err := a.monitors.VirtualBounds()
					if err != nil {
						return err
					}
					return render(c.App.Writer, a.format, r)
				}),
			},
			{
				Name:  "size",
				Usage: "print the size of a monitor",
				Flags: []cli.Flag{nameFlag},
				Action: action(func(c *cli.Context, a *app) error {
					s, err := a.monitors.ScreenSize(c.String("name"))
					if err != nil {
						return err
					}
					return render(c.App.Writer, a.format, s)
				}),
			},
			{
				Name:  "workarea",
				Usage: "print the usable area of a monitor",
				Flags: []cli.Flag{nameFlag},
				Action: action(func(c *cli.Context, a *app) error {
					r, err := a.monitors.WorkArea(c.String("name"))
					if err != nil {
						return err
					}
					return render(c.App.Writer, a.format, r)
				}),
			},
			{
				Name:  "position",
				Usage: "print the origin of a monitor",
				Flags: []cli.Flag{nameFlag},
				Action: action(func(c *cli.Context, a *app) error {
					p, err := a.monitors.Position(c.String("name"))
					if err != nil {
						return err
					}
					return render(c.App.Writer, a.format, p)
				}),
			},
			{
				Name:  "rect",
				Usage: "print the frame of a monitor",
				Flags: []cli.Flag{nameFlag},
				Action: action(func(c *cli.Context, a *app) error {
					r, err := a.monitors.Rect(c.String("name"))
					if err != nil {
						return err
					}
					return render(c.App.Writer, a.format, r)
				}),
			},
			{
				Name:      "at",
				Usage:     "print the monitor containing a point",
				ArgsUsage: "X Y",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "global", Usage: "X Y are top-left origin coordinates"},
				},
				Action: action(func(c *cli.Context, a *app) error {
					x, y, err := pointArgs(c)
					if err != nil {
						return err
					}
					name := a.monitors.NameAt(x, y)
					if c.Bool("global") {
						name = a.monitors.NameAtGlobal(x, y)
					}
					if name == "" {
						return errors.Errorf("no monitor at %d,%d", x, y)
					}
					return render(c.App.Writer, a.format, name)
				}),
			},
			{
				Name:  "mode",
				Usage: "print the current display mode",
				Flags: []cli.Flag{nameFlag},
				Action: action(func(c *cli.Context, a *app) error {
					m, err := a.monitors.CurrentMode(c.String("name"))
					if err != nil {
						return err
					}
					return render(c.App.Writer, a.format, m)
				}),
			},
			{
				Name:  "modes",
				Usage: "print every supported display mode",
				Flags: []cli.Flag{nameFlag},
				Action: action(func(c *cli.Context, a *app) error {
					modes, err := a.monitors.AllowedModes(c.String("name"))
					if err != nil {
						return err
					}
					return render(c.App.Writer, a.format, modes)
				}),
			},
			{
				Name:  "set-mode",
				Usage: "switch a monitor to a supported display mode",
				Flags: []cli.Flag{
					nameFlag,
					&cli.IntFlag{Name: "width", Required: true},
					&cli.IntFlag{Name: "height", Required: true},
					&cli.Float64Flag{Name: "refresh", Usage: "refresh rate in Hz, as printed by modes"},
				},
				Action: action(func(c *cli.Context, a *app) error {
					mode := monitor.DisplayMode{
						Width:     c.Int("width"),
						Height:    c.Int("height"),
						Frequency: c.Float64("refresh"),
					}
					return a.monitors.ChangeMode(mode, c.String("name"))
				}),
			},
			{
				Name:  "mouse",
				Usage: "print the mouse pointer position",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "unflip", Usage: "report y with the origin at the top of the screen"},
				},
				Action: action(func(c *cli.Context, a *app) error {
					return render(c.App.Writer, a.format, a.monitors.MousePosition(c.Bool("unflip")))
				}),
			},
			{
				Name:  "capture",
				Usage: "save a screenshot of a monitor as PNG",
				Flags: []cli.Flag{
					nameFlag,
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "screenshot.png"},
					&cli.UintFlag{Name: "width", Usage: "scale the image down to this width"},
				},
				Action: action(capture),
			},
			{
				Name:  "locate",
				Usage: "find a template image on screen",
				Flags: []cli.Flag{
					nameFlag,
					&cli.PathFlag{Name: "template", Aliases: []string{"t"}, Required: true},
					&cli.Float64Flag{Name: "threshold", Value: locate.DefaultThreshold},
					&cli.UintFlag{Name: "width", Usage: "scale captures down to this width before matching"},
					&cli.StringFlag{Name: "app", Usage: "search only the first window of this application"},
					&cli.BoolFlag{Name: "click", Usage: "click the centre of the match"},
				},
				Action: action(locateTemplate),
			},
			{
				Name:      "window",
				Usage:     "print the frame of an application window and the monitor it is on",
				ArgsUsage: "APP",
				Action:    action(appWindow),
			},
		},
	}
}

func pointArgs(c *cli.Context) (int, int, error) {
	if c.NArg() != 2 {
		return 0, 0, errors.New("expected X and Y")
	}
	x, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse X")
	}
	y, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse Y")
	}
	return x, y, nil
}

func capture(c *cli.Context, a *app) error {
	bounds, err := a.monitors.GlobalBounds(c.String("name"))
	if err != nil {
		return err
	}
	img, err := locate.Capture(bounds, c.Uint("width"))
	if err != nil {
		return err
	}

	out := c.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}
	a.log.Info("screenshot saved", zap.String("path", out), zap.Stringer("bounds", bounds))
	return nil
}

// writePNG encodes img to path, returning the close error too.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func locateTemplate(c *cli.Context, a *app) error {
	m, err := locate.NewMatcher(c.Path("template"), float32(c.Float64("threshold")))
	if err != nil {
		return err
	}
	defer m.Close()

	l := locate.NewLocator(a.monitors, m, c.Uint("width"), a.log)
	var res locate.Result
	if app := c.String("app"); app != "" {
		bounds, werr := locate.AppWindow(app)
		if werr != nil {
			return errors.Wrapf(werr, "locate window of %s", app)
		}
		res, err = l.FindIn(bounds)
	} else {
		res, err = l.Find(c.String("name"))
	}
	if err != nil {
		return err
	}
	if c.Bool("click") {
		if err := pointer.Click(res.Point); err != nil {
			return errors.Wrap(err, "click")
		}
		a.log.Info("click performed", zap.Int("x", res.Point.X), zap.Int("y", res.Point.Y))
	}
	return render(c.App.Writer, a.format, res)
}

// windowInfo is what the window command prints.
type windowInfo struct {
	Monitor string `json:"monitor" yaml:"monitor"`
	Left    int    `json:"left" yaml:"left"`
	Top     int    `json:"top" yaml:"top"`
	Width   int    `json:"width" yaml:"width"`
	Height  int    `json:"height" yaml:"height"`
}

func appWindow(c *cli.Context, a *app) error {
	if c.NArg() != 1 {
		return errors.New("expected an application name")
	}
	r, err := locate.AppWindow(c.Args().First())
	if err != nil {
		return err
	}
	centre := r.Min.Add(r.Size().Div(2))
	return render(c.App.Writer, a.format, windowInfo{
		Monitor: a.monitors.NameAtGlobal(centre.X, centre.Y),
		Left:    r.Min.X,
		Top:     r.Min.Y,
		Width:   r.Dx(),
		Height:  r.Dy(),
	})
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "monctl:", err)
		os.Exit(1)
	}
}
