package config

import (
	"context"
	"log/slog"
)

// WatchMotion reloads the motion config each time w reports a change.
// The channel holds only the newest config; a slow reader never sees stale ones.
// It is closed when ctx ends or the watcher closes.
func WatchMotion(ctx context.Context, w *Watcher, load func() (*MotionConfig, error), logger *slog.Logger) <-chan *MotionConfig {
	if logger == nil {
		logger = slog.Default()
	}
	out := make(chan *MotionConfig, 1)

	go func() {
		defer close(out)
		errs := w.Errors
		for {
			select {
			case <-ctx.Done():
				return
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				cfg, err := load()
				if err != nil {
					logger.Warn("config reload failed", "file", name, "error", err)
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- cfg
				logger.Info("config reloaded", "file", name)
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				logger.Warn("config watcher error", "error", err)
			}
		}
	}()
	return out
}
