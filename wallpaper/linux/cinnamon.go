//go:build linux

package linux

import (
	"strconv"

	"noaa-wallpaper/wallpaper/modes"
)

func SetCinnamon(file string, mode modes.FillStyle) error {
	if err := run("dconf", "write", "/org/cinnamon/desktop/background/picture-options",
		strconv.Quote(getGNOMEString(mode))); err != nil {
		return err
	}
	return run("dconf", "write", "/org/cinnamon/desktop/background/picture-uri",
		strconv.Quote("file://"+file))
}
