package repository

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// Watch reloads the catalog whenever its source file changes, until ctx is
// done. The parent directory is watched so that editors which replace the
// file by rename are picked up. Only valid for file-backed repositories.
func (r *TechniqueRepository) Watch(ctx context.Context) error {
	if r.source == EmbeddedSource {
		return nil
	}
	path, err := filepath.Abs(r.source)
	if err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return err
	}

	go func() {
		defer fw.Close()
		var timer *time.Timer
		fire := make(chan struct{}, 1)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			case <-fire:
				r.log.Info("catalog file changed, reloading")
				// rejected reloads keep the previous snapshot and are logged by Reload
				_, _ = r.Reload()
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				r.log.Warn("catalog watcher error", "error", err)
			}
		}
	}()
	return nil
}
