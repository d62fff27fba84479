// Package config holds the runtime configuration. The defaults reproduce
// the tool's original hard-coded constants; everything can be overridden by
// flags, environment variables, or an optional YAML file.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v2"

	"noaa-wallpaper/wallpaper/modes"
)

// DefaultURL is the NOAA GOES-19 full-disk GEOCOLOR "latest" endpoint. The
// image behind it is replaced upstream roughly every ten minutes.
const DefaultURL = "https://cdn.star.nesdis.noaa.gov/GOES19/ABI/FD/GEOCOLOR/latest.jpg"

type Config struct {
	URL      string   `yaml:"url"`
	CacheDir string   `yaml:"cache_dir"`
	Filename string   `yaml:"filename"`
	Timeout  Duration `yaml:"timeout"`
	Settle   Duration `yaml:"settle"`
	MaxWidth int      `yaml:"max_width"`
	Mode     string   `yaml:"mode"`
	Interval Duration `yaml:"interval"`
}

func Default() Config {
	return Config{
		URL:      DefaultURL,
		CacheDir: defaultCacheDir(),
		Filename: "noaa_latest_background.jpg",
		Timeout:  Duration(30 * time.Second),
		Settle:   Duration(time.Second),
		Mode:     "zoom",
		Interval: Duration(10 * time.Minute),
	}
}

// defaultCacheDir prefers the OS per-user cache root (%LOCALAPPDATA% on
// Windows, ~/.cache on Linux), falling back to the executable's directory.
func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "noaa_wallpaper")
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "noaa_wallpaper")
	}
	return "noaa_wallpaper"
}

// ImagePath is the fixed local path the image is overwritten at each run.
func (c Config) ImagePath() string {
	return filepath.Join(c.CacheDir, c.Filename)
}

func (c Config) FillStyle() (modes.FillStyle, error) {
	return modes.Parse(c.Mode)
}

// LoadFile overlays values from a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "read config file", goerr.V("path", path))
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return goerr.Wrap(err, "parse config file", goerr.V("path", path))
	}
	return nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return goerr.Wrap(err, "invalid source URL", goerr.V("url", c.URL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.New("source URL must be http or https", goerr.V("url", c.URL))
	}
	if c.Filename == "" {
		return goerr.New("image filename must not be empty")
	}
	if c.Timeout.Std() <= 0 {
		return goerr.New("timeout must be positive", goerr.V("timeout", c.Timeout.Std()))
	}
	if c.Interval.Std() <= 0 {
		return goerr.New("interval must be positive", goerr.V("interval", c.Interval.Std()))
	}
	if _, err := modes.Parse(c.Mode); err != nil {
		return goerr.Wrap(err, "invalid fill style")
	}
	return nil
}

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return goerr.Wrap(err, "parse duration", goerr.V("value", s))
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
