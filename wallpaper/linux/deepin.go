//go:build linux

package linux

import (
	"strconv"

	"noaa-wallpaper/wallpaper/modes"
)

func SetDeepin(file string, mode modes.FillStyle) error {
	if err := run("dconf", "write", "/com/deepin/wrap/gnome/desktop/background/picture-options",
		strconv.Quote(getGNOMEString(mode))); err != nil {
		return err
	}
	return run("dconf", "write", "/com/deepin/wrap/gnome/desktop/background/picture-uri",
		strconv.Quote("file://"+file))
}
