package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"noaa-wallpaper/config"
	"noaa-wallpaper/wallpaper/modes"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()

	gt.Value(t, cfg.URL).Equal(config.DefaultURL)
	gt.Value(t, cfg.Filename).Equal("noaa_latest_background.jpg")
	gt.Value(t, cfg.Timeout.Std()).Equal(30 * time.Second)
	gt.Value(t, cfg.Settle.Std()).Equal(time.Second)
	gt.Number(t, cfg.MaxWidth).Equal(0)
	gt.NoError(t, cfg.Validate())

	style, err := cfg.FillStyle()
	gt.NoError(t, err)
	gt.Value(t, style).Equal(modes.FILL_ZOOM)

	gt.Value(t, cfg.ImagePath()).Equal(filepath.Join(cfg.CacheDir, cfg.Filename))
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := []byte("url: https://example.com/latest.jpg\ntimeout: 5s\nmax_width: 2560\nmode: fit\n")
	gt.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg := config.Default()
	gt.NoError(t, cfg.LoadFile(path))

	gt.Value(t, cfg.URL).Equal("https://example.com/latest.jpg")
	gt.Value(t, cfg.Timeout.Std()).Equal(5 * time.Second)
	gt.Number(t, cfg.MaxWidth).Equal(2560)
	gt.Value(t, cfg.Mode).Equal("fit")

	// untouched keys keep their defaults
	gt.Value(t, cfg.Filename).Equal("noaa_latest_background.jpg")
	gt.Value(t, cfg.Settle.Std()).Equal(time.Second)
}

func TestLoadFileBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	gt.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0o644))

	cfg := config.Default()
	gt.Error(t, cfg.LoadFile(path))
}

func TestLoadFileMissing(t *testing.T) {
	cfg := config.Default()
	gt.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "nope.yml")))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"bad scheme":     func(c *config.Config) { c.URL = "ftp://example.com/a.jpg" },
		"empty filename": func(c *config.Config) { c.Filename = "" },
		"zero timeout":   func(c *config.Config) { c.Timeout = 0 },
		"zero interval":  func(c *config.Config) { c.Interval = 0 },
		"bad mode":       func(c *config.Config) { c.Mode = "mosaic" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			gt.Error(t, cfg.Validate())
		})
	}
}
