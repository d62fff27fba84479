package cli

import (
	"time"

	"github.com/urfave/cli/v3"

	"noaa-wallpaper/config"
)

// appFlags mirrors config.Config as CLI flags. Precedence when building the
// final configuration: explicit flags > YAML file > defaults. The max_width
// fit setting is file-only.
type appFlags struct {
	ConfigPath string
	URL        string
	CacheDir   string
	Filename   string
	Timeout    time.Duration
	Settle     time.Duration
	Mode       string
	Interval   time.Duration
}

func (f *appFlags) Flags() []cli.Flag {
	d := config.Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a YAML config file",
			Destination: &f.ConfigPath,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "url",
			Usage:       "Source image URL",
			Value:       d.URL,
			Destination: &f.URL,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_URL"),
		},
		&cli.StringFlag{
			Name:        "cache-dir",
			Usage:       "Directory the image is saved under",
			Value:       d.CacheDir,
			Destination: &f.CacheDir,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_CACHE_DIR"),
		},
		&cli.StringFlag{
			Name:        "filename",
			Usage:       "Local image filename",
			Value:       d.Filename,
			Destination: &f.Filename,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_FILENAME"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "HTTP timeout for the download",
			Value:       d.Timeout.Std(),
			Destination: &f.Timeout,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:        "settle",
			Usage:       "Pause between download and wallpaper change",
			Value:       d.Settle.Std(),
			Destination: &f.Settle,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_SETTLE"),
		},
		&cli.StringFlag{
			Name:        "mode",
			Usage:       "Fill style: center, zoom, fit, span, stretch, tile",
			Value:       d.Mode,
			Destination: &f.Mode,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_MODE"),
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Refresh interval for watch mode",
			Value:       d.Interval.Std(),
			Destination: &f.Interval,
			Sources:     cli.EnvVars("NOAA_WALLPAPER_INTERVAL"),
		},
	}
}

func (f *appFlags) Build(c *cli.Command) (config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		if err := cfg.LoadFile(f.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("url") {
		cfg.URL = f.URL
	}
	if c.IsSet("cache-dir") {
		cfg.CacheDir = f.CacheDir
	}
	if c.IsSet("filename") {
		cfg.Filename = f.Filename
	}
	if c.IsSet("timeout") {
		cfg.Timeout = config.Duration(f.Timeout)
	}
	if c.IsSet("settle") {
		cfg.Settle = config.Duration(f.Settle)
	}
	if c.IsSet("mode") {
		cfg.Mode = f.Mode
	}
	if c.IsSet("interval") {
		cfg.Interval = config.Duration(f.Interval)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
