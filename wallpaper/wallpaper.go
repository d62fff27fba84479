// Package wallpaper applies a local image file as the desktop background.
package wallpaper

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/wallpaper/modes"
)

// ErrUnsupportedDesktop is returned on Linux when the desktop environment
// cannot be identified or has no known wallpaper mechanism.
var ErrUnsupportedDesktop = goerr.New("unsupported desktop environment")

// Set applies the image at path as the desktop background. The file must
// already exist and be readable; no OS call is made otherwise. The change is
// persisted and visible immediately.
func Set(path string, mode modes.FillStyle) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return goerr.Wrap(err, "resolve wallpaper path", goerr.V("path", path))
	}
	if _, err := os.Stat(abs); err != nil {
		return goerr.Wrap(err, "wallpaper image is not readable", goerr.V("path", abs))
	}
	return setFromFile(abs, mode)
}
