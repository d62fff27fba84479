//go:build linux

package linux

import (
	"noaa-wallpaper/wallpaper/modes"
)

func SetGNOME(file string, mode modes.FillStyle) error {
	uri := "file://" + file
	if err := run("gsettings", "set", "org.gnome.desktop.background",
		"picture-options", getGNOMEString(mode)); err != nil {
		return err
	}
	if err := run("gsettings", "set", "org.gnome.desktop.background",
		"picture-uri", uri); err != nil {
		return err
	}
	// GNOME 42+ reads the dark variant when a dark style is active.
	return run("gsettings", "set", "org.gnome.desktop.background",
		"picture-uri-dark", uri)
}
