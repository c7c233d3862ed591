package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/greysquirr3l/monctl/internal/monitor"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return errors.Errorf("unknown output format %q", format)
}

// render writes v to w in the requested format.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return renderText(w, v)
}

func renderText(w io.Writer, v any) error {
	var err error
	switch v := v.(type) {
	case map[string]monitor.ScreenValue:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s := v[name]
			primary := ""
			if s.IsPrimary {
				primary = " (primary)"
			}
			_, err = fmt.Fprintf(w, "%s%s: pos=%d,%d size=%dx%d workarea=%d,%d,%d,%d scale=%d%% dpi=%dx%d rotation=%d refresh=%gHz depth=%d\n",
				name, primary,
				s.Position.X, s.Position.Y, s.Size.Width, s.Size.Height,
				s.WorkArea.Left, s.WorkArea.Top, s.WorkArea.Right, s.WorkArea.Bottom,
				s.Scale[0], s.DPI[0], s.DPI[1], s.Orientation, s.Frequency, s.ColorDepth)
			if err != nil {
				return err
			}
		}
		return nil
	case []monitor.DisplayMode:
		for _, m := range v {
			if err = renderText(w, m); err != nil {
				return err
			}
		}
		return nil
	case monitor.DisplayMode:
		_, err = fmt.Fprintf(w, "%dx%d@%gHz\n", v.Width, v.Height, v.Frequency)
	case monitor.Size:
		_, err = fmt.Fprintf(w, "%dx%d\n", v.Width, v.Height)
	case monitor.Point:
		_, err = fmt.Fprintf(w, "%d,%d\n", v.X, v.Y)
	case monitor.Rect:
		_, err = fmt.Fprintf(w, "%d,%d,%d,%d\n", v.Left, v.Top, v.Right, v.Bottom)
	default:
		_, err = fmt.Fprintf(w, "%v\n", v)
	}
	return err
}
