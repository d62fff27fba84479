package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"noaa-wallpaper/config"
	"noaa-wallpaper/fetch"
	"noaa-wallpaper/imagefit"
	"noaa-wallpaper/wallpaper"
)

// runOnce executes the whole pipeline a single time. A download failure
// short-circuits the run; the wallpaper is never changed to a stale or
// missing file.
func runOnce(ctx context.Context, cfg config.Config) error {
	logger := ctxlog.From(ctx)

	client := fetch.New(cfg.Timeout.Std())
	updated, err := updateOnce(ctx, cfg, client)
	if err != nil {
		return err
	}
	if updated {
		logger.Info("wallpaper updated", "path", cfg.ImagePath())
	}
	return nil
}

// updateOnce downloads the image and, when it changed, applies it as the
// wallpaper. Shared between the one-shot run and the watch loop.
func updateOnce(ctx context.Context, cfg config.Config, client *fetch.Client) (bool, error) {
	logger := ctxlog.From(ctx)

	dest := cfg.ImagePath()
	logger.Info("downloading latest image", "url", cfg.URL, "dest", dest)

	updated, err := client.Download(ctx, cfg.URL, dest)
	if err != nil {
		return false, goerr.Wrap(err, "background not updated due to download failure")
	}
	if !updated {
		return false, nil
	}

	// Let the filesystem settle before the desktop reads the file back.
	time.Sleep(cfg.Settle.Std())

	if cfg.MaxWidth > 0 {
		resized, err := imagefit.FitFile(dest, cfg.MaxWidth)
		if err != nil {
			return false, goerr.Wrap(err, "downscale downloaded image")
		}
		if resized {
			logger.Info("image downscaled", "max_width", cfg.MaxWidth)
		}
	}

	style, err := cfg.FillStyle()
	if err != nil {
		return false, err
	}
	if err := wallpaper.Set(dest, style); err != nil {
		return false, goerr.Wrap(err, "background could not be set")
	}
	return true, nil
}
