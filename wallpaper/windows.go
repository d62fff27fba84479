//go:build windows

package wallpaper

import (
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/modes"
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x0001
	spifSendWinIniChange = 0x0002
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// setFromFile writes the fill style, then asks the shell to switch the
// wallpaper, persisting the change to the user profile and broadcasting it
// to running processes.
func setFromFile(file string, mode modes.FillStyle) error {
	if err := setStyle(mode); err != nil {
		return err
	}

	p, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return goerr.Wrap(err, "encode wallpaper path", goerr.V("path", file))
	}
	r1, _, lastErr := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendWinIniChange,
	)
	if r1 == 0 {
		return goerr.Wrap(lastErr, "SystemParametersInfoW failed", goerr.V("path", file))
	}
	return nil
}

// setStyle writes the Control Panel\Desktop values the shell consults when
// the wallpaper changes.
func setStyle(mode modes.FillStyle) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return goerr.Wrap(err, "open desktop registry key")
	}
	defer key.Close()

	style, tile := "10", "0" // zoom
	switch mode {
	case modes.CENTER:
		style = "0"
	case modes.STRETCH:
		style = "2"
	case modes.FIT:
		style = "6"
	case modes.SPAN:
		style = "22"
	case modes.TILE:
		style, tile = "0", "1"
	}
	if err := key.SetStringValue("WallpaperStyle", style); err != nil {
		return goerr.Wrap(err, "set WallpaperStyle")
	}
	if err := key.SetStringValue("TileWallpaper", tile); err != nil {
		return goerr.Wrap(err, "set TileWallpaper")
	}
	return nil
}
