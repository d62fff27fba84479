// Package modes enumerates wallpaper fill styles.
package modes

import (
	"fmt"
	"strings"
)

// FillStyle controls how the desktop scales the image to the screen.
type FillStyle int

const (
	CENTER FillStyle = iota
	FILL_ZOOM
	FIT
	SPAN
	STRETCH
	TILE
)

func (s FillStyle) String() string {
	switch s {
	case CENTER:
		return "center"
	case FILL_ZOOM:
		return "zoom"
	case FIT:
		return "fit"
	case SPAN:
		return "span"
	case STRETCH:
		return "stretch"
	case TILE:
		return "tile"
	}
	return fmt.Sprintf("FillStyle(%d)", int(s))
}

// Parse maps a configuration value onto a fill style. Common synonyms used
// by the various desktops are accepted.
func Parse(s string) (FillStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centered":
		return CENTER, nil
	case "zoom", "crop", "fill":
		return FILL_ZOOM, nil
	case "fit", "scaled":
		return FIT, nil
	case "span", "spanned":
		return SPAN, nil
	case "stretch", "stretched":
		return STRETCH, nil
	case "tile", "tiled":
		return TILE, nil
	}
	return FILL_ZOOM, fmt.Errorf("unknown fill style %q", s)
}
