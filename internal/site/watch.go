package site

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// Watch reloads templates whenever an .html file under dir/templates changes.
// It blocks until ctx is done. Only meaningful when the Site was built from an
// on-disk directory.
func (s *Site) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Join(dir, "templates")); err != nil {
		return err
	}
	s.logger.Info("Watching templates", zap.String("dir", dir))

	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".html") || ev.Op == fsnotify.Chmod {
				continue
			}
			// editors emit bursts of writes; coalesce them
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			if err := s.Reload(); err != nil {
				s.logger.Warn("Template reload failed, keeping previous set", zap.Error(err))
				continue
			}
			s.logger.Info("Templates reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Template watcher error", zap.Error(err))
		}
	}
}
