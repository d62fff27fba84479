//go:build !windows && !linux && !darwin

package wallpaper

import (
	"runtime"

	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/modes"
)

func setFromFile(string, modes.FillStyle) error {
	return goerr.New("setting the wallpaper is not supported on this OS",
		goerr.V("os", runtime.GOOS))
}
