//go:build linux

package linux

import (
	"fmt"
	"strconv"

	"github.com/godbus/dbus/v5"
	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/modes"
)

// SetKDE drives the plasmashell scripting interface over the session bus;
// Plasma has no command line tool for the wallpaper.
func SetKDE(file string, mode modes.FillStyle) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return goerr.Wrap(err, "connect to session bus")
	}

	call := conn.Object("org.kde.plasmashell", "/PlasmaShell").
		Call("org.kde.PlasmaShell.evaluateScript", 0, plasmaScript(file, mode))
	if call.Err != nil {
		return goerr.Wrap(call.Err, "evaluate plasmashell script")
	}
	return nil
}

// plasmaScript quotes the path as a string literal, so quotes and
// backslashes in it cannot break out of the script.
func plasmaScript(file string, mode modes.FillStyle) string {
	return fmt.Sprintf(`
var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
	var d = allDesktops[i];
	d.wallpaperPlugin = "org.kde.image";
	d.currentConfigGroup = ["Wallpaper", "org.kde.image", "General"];
	d.writeConfig("Image", %s);
	d.writeConfig("FillMode", %d);
}`, strconv.Quote("file://"+file), plasmaFillMode(mode))
}

// plasmaFillMode maps onto the org.kde.image FillMode values.
func plasmaFillMode(mode modes.FillStyle) int {
	switch mode {
	case modes.STRETCH:
		return 0
	case modes.FIT:
		return 1
	case modes.CENTER:
		return 3
	case modes.TILE:
		return 6
	default: // zoom / span
		return 2
	}
}
