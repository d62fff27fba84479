//go:build linux

package linux

import (
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/modes"
)

// SetXFCE writes every backdrop image property exposed by xfconf, which
// covers multi-monitor and per-workspace setups. The backdrop style is left
// as configured.
func SetXFCE(file string, _ modes.FillStyle) error {
	out, err := exec.Command("xfconf-query", "-c", "xfce4-desktop", "-l").Output()
	if err != nil {
		return goerr.Wrap(err, "list xfce4-desktop properties")
	}
	props := backdropImageProperties(string(out))
	if len(props) == 0 {
		return goerr.New("no backdrop image properties found in xfce4-desktop")
	}
	for _, prop := range props {
		if err := run("xfconf-query", "-c", "xfce4-desktop", "-p", prop, "-s", file); err != nil {
			return err
		}
	}
	return nil
}

func backdropImageProperties(list string) []string {
	var props []string
	for _, line := range strings.Split(list, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "last-image") || strings.Contains(line, "image-path") {
			props = append(props, line)
		}
	}
	return props
}
