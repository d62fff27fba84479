//go:build linux

package wallpaper

import (
	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/linux"
	"noaa-wallpaper/wallpaper/modes"
)

func setFromFile(file string, mode modes.FillStyle) error {
	return applyDesktop(linux.Detect(), file, mode)
}

func applyDesktop(de linux.Desktop, file string, mode modes.FillStyle) error {
	switch de {
	case linux.Cinnamon:
		return linux.SetCinnamon(file, mode)
	case linux.MATE:
		return linux.SetMate(file, mode)
	case linux.XFCE:
		return linux.SetXFCE(file, mode)
	case linux.GNOME:
		return linux.SetGNOME(file, mode)
	case linux.KDE:
		return linux.SetKDE(file, mode)
	case linux.Deepin:
		return linux.SetDeepin(file, mode)
	}
	return goerr.Wrap(ErrUnsupportedDesktop, "no wallpaper mechanism for this session",
		goerr.V("desktop", string(de)))
}
