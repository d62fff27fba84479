//go:build darwin

package wallpaper

import (
	"os/exec"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/modes"
)

// setFromFile uses AppleScript to tell Finder to set the desktop wallpaper
// to the specified file. Finder manages the fill style itself.
func setFromFile(file string, _ modes.FillStyle) error {
	err := exec.Command("osascript", "-e",
		`tell application "System Events" to tell every desktop to set picture to `+strconv.Quote(file)).Run()
	if err != nil {
		return goerr.Wrap(err, "osascript failed", goerr.V("path", file))
	}
	return nil
}
