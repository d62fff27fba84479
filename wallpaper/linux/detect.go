// Package linux sets the wallpaper through the configuration mechanism of
// the desktop environment in use.
package linux

import (
	"os"
	"os/exec"
	"strings"
)

// Desktop identifies a Linux desktop environment.
type Desktop string

const (
	Cinnamon Desktop = "cinnamon"
	MATE     Desktop = "mate"
	XFCE     Desktop = "xfce"
	GNOME    Desktop = "gnome"
	KDE      Desktop = "kde"
	Deepin   Desktop = "deepin"
	Unknown  Desktop = ""
)

// Detect identifies the active desktop environment from the session
// environment variables, falling back to probing PATH for well-known
// session binaries.
func Detect() Desktop {
	return detect(os.Getenv, exec.LookPath)
}

func detect(getenv func(string) string, lookPath func(string) (string, error)) Desktop {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "XDG_SESSION_DESKTOP", "DESKTOP_SESSION"} {
		if de := fromSessionName(getenv(key)); de != Unknown {
			return de
		}
	}

	probes := []struct {
		bin string
		de  Desktop
	}{
		{"cinnamon", Cinnamon},
		{"mate-session", MATE},
		{"xfce4-session", XFCE},
		{"gnome-session", GNOME},
		{"plasmashell", KDE},
	}
	for _, p := range probes {
		if _, err := lookPath(p.bin); err == nil {
			return p.de
		}
	}
	return Unknown
}

// fromSessionName handles variations such as "X-Cinnamon" or "ubuntu:GNOME".
func fromSessionName(name string) Desktop {
	name = strings.ToUpper(name)
	switch {
	case strings.Contains(name, "CINNAMON"):
		return Cinnamon
	case strings.Contains(name, "MATE"):
		return MATE
	case strings.Contains(name, "XFCE"):
		return XFCE
	case strings.Contains(name, "GNOME"), strings.Contains(name, "UNITY"):
		return GNOME
	case strings.Contains(name, "KDE"), strings.Contains(name, "PLASMA"):
		return KDE
	case strings.Contains(name, "DEEPIN"), strings.Contains(name, "DDE"):
		return Deepin
	}
	return Unknown
}
