//go:build linux

package linux

import (
	"strconv"

	"noaa-wallpaper/wallpaper/modes"
)

func SetMate(file string, mode modes.FillStyle) error {
	if err := run("dconf", "write", "/org/mate/desktop/background/picture-options",
		strconv.Quote(getGNOMEString(mode))); err != nil {
		return err
	}
	// MATE takes a plain path, not a file:// URI.
	return run("dconf", "write", "/org/mate/desktop/background/picture-filename",
		strconv.Quote(file))
}
