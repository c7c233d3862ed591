package locate

import (
	"image"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrAppNotRunning means System Events has no process with that name.
	ErrAppNotRunning = errors.New("application not running")
	// ErrNoWindow means the process exists but has no window.
	ErrNoWindow = errors.New("application has no window")
)

const (
	replyNoProcess = "no-process"
	replyNoWindow  = "no-window"
)

// frontWindowScript prints the first window of the process named by its
// argument as "left top width height", or one of the reply markers.
const frontWindowScript = `
on run argv
	set procName to item 1 of argv
	tell application "System Events"
		if not (exists process procName) then return "` + replyNoProcess + `"
		set wins to windows of process procName
		if wins is {} then return "` + replyNoWindow + `"
		set {l, t} to position of item 1 of wins
		set {w, h} to size of item 1 of wins
		return (l as text) & " " & (t as text) & " " & (w as text) & " " & (h as text)
	end tell
end run`

// AppWindow returns the frame of the first window of appName in flipped
// global coordinates, as reported by System Events.
func AppWindow(appName string) (image.Rectangle, error) {
	out, err := exec.Command("osascript", "-e", frontWindowScript, appName).CombinedOutput()
	if err != nil {
		return image.Rectangle{}, errors.Wrapf(err, "osascript: %s", strings.TrimSpace(string(out)))
	}
	return parseWindowInfo(string(out))
}

// parseWindowInfo turns the script's reply into a rectangle.
func parseWindowInfo(out string) (image.Rectangle, error) {
	reply := strings.TrimSpace(out)
	switch reply {
	case replyNoProcess:
		return image.Rectangle{}, ErrAppNotRunning
	case replyNoWindow:
		return image.Rectangle{}, ErrNoWindow
	}

	fields := strings.Fields(reply)
	if len(fields) != 4 {
		return image.Rectangle{}, errors.Errorf("window frame %q: want 4 fields, got %d", reply, len(fields))
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return image.Rectangle{}, errors.Wrapf(err, "window frame %q", reply)
		}
		v[i] = n
	}
	left, top, w, h := v[0], v[1], v[2], v[3]
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, errors.Errorf("window frame %q: empty %dx%d", reply, w, h)
	}
	return image.Rect(left, top, left+w, top+h), nil
}
