//go:build linux

package linux

import (
	"bytes"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/modes"
)

// run executes a desktop configuration command, capturing stderr for the
// error message.
func run(name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "run "+name,
			goerr.V("args", args),
			goerr.V("stderr", stderr.String()))
	}
	return nil
}

// getGNOMEString maps a fill style onto the picture-options value shared by
// the GNOME family of desktops.
func getGNOMEString(mode modes.FillStyle) string {
	switch mode {
	case modes.CENTER:
		return "centered"
	case modes.FIT:
		return "scaled"
	case modes.SPAN:
		return "spanned"
	case modes.STRETCH:
		return "stretched"
	case modes.TILE:
		return "wallpaper"
	default:
		return "zoom"
	}
}
