package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// debounceWindow coalesces editor save bursts into a single rerun.
const debounceWindow = 300 * time.Millisecond

// Watch runs one provisioning pass, then reruns whenever a native source
// changes, until the context is cancelled. Individual run failures are
// logged rather than terminating the watch.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create source watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(a.settings.SourceDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch source directory"), "path", a.settings.SourceDir)
	}

	if err := a.Run(ctx, opts); err != nil {
		a.logger.Error(err)
	}
	a.logger.Info(fmt.Sprintf("watching %s for changes", a.settings.SourceDir))

	var debounce *time.Timer
	rerun := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceWindow, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error(err)
		case <-rerun:
			if err := a.Run(ctx, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}
