package cli

import (
	"context"
	"time"

	"fyne.io/systray"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"noaa-wallpaper/config"
	"noaa-wallpaper/fetch"
	"noaa-wallpaper/icon"
)

func cmdWatch(flags *appFlags) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Keep the wallpaper current with a system tray status icon",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := flags.Build(c)
			if err != nil {
				return err
			}
			w := &watcher{
				ctx:    ctx,
				cfg:    cfg,
				client: fetch.New(cfg.Timeout.Std()),
			}
			systray.Run(w.onReady, w.onExit)
			return nil
		},
	}
}

type watcher struct {
	ctx    context.Context
	cfg    config.Config
	client *fetch.Client
}

func (w *watcher) onReady() {
	systray.SetTemplateIcon(icon.Data, icon.Data)
	systray.SetTitle("NOAA Wallpaper")
	systray.SetTooltip("Latest GOES GEOCOLOR image as wallpaper")

	mStatus := systray.AddMenuItem("Status: Running", "Click to pause or resume updates")
	mUpdated := systray.AddMenuItem("Updated: --", "Time of the last wallpaper change")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Stop watching and exit")

	go func() {
		for range mQuit.ClickedCh {
			systray.Quit()
		}
	}()

	go func() {
		stopCh := make(chan bool)
		running := true
		go w.loop(stopCh, mUpdated)

		for range mStatus.ClickedCh {
			if running {
				running = false
				stopCh <- true
				mStatus.SetTitle("Status: Paused")
			} else {
				running = true
				stopCh = make(chan bool)
				mStatus.SetTitle("Status: Running")
				go w.loop(stopCh, mUpdated)
			}
		}
	}()
}

func (w *watcher) onExit() {
	ctxlog.From(w.ctx).Info("watch stopped")
}

// loop refreshes immediately and then on every tick until stopped. The
// fetch client lives on the watcher and carries the Last-Modified state
// across pause/resume, so an unchanged upstream image skips the wallpaper
// call entirely.
func (w *watcher) loop(stopCh chan bool, mUpdated *systray.MenuItem) {
	logger := ctxlog.From(w.ctx)

	refresh := func() {
		updated, err := updateOnce(w.ctx, w.cfg, w.client)
		if err != nil {
			mUpdated.SetTitle("Updated: error")
			logger.Error("refresh failed", "error", err)
			return
		}
		if updated {
			mUpdated.SetTitle("Updated: " + time.Now().Format("15:04"))
		}
	}

	refresh()

	ticker := time.NewTicker(w.cfg.Interval.Std())
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			refresh()
		case <-stopCh:
			return
		}
	}
}
