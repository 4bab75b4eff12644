package main

import (
	"log/slog"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// reloader watches the shader files and reports when any of them has been rewritten. The
// directories are watched rather than the files so editors that replace files on save are seen.
type reloader struct {
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	events  chan struct{}
	done    chan struct{}
}

func newReloader(logger *slog.Logger, paths ...string) (*reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shader watcher")
	}

	r := &reloader{
		logger:  logger,
		watcher: watcher,
		files:   make(map[string]struct{}, len(paths)),
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = watcher.Close()
			return nil, errors.Wrapf(err, "failed to resolve shader path %s", path)
		}
		r.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		err = watcher.Add(dir)
		if err != nil {
			_ = watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	go r.watch()

	return r, nil
}

func (r *reloader) watch() {
	defer close(r.done)

	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Write != fsnotify.Write &&
				event.Op&fsnotify.Create != fsnotify.Create &&
				event.Op&fsnotify.Rename != fsnotify.Rename {
				continue
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, watched := r.files[abs]; !watched {
				continue
			}

			r.logger.Debug("shader changed", slog.String("path", event.Name))
			select {
			case r.events <- struct{}{}:
			default:
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("shader watcher error", slog.String("error", err.Error()))
		}
	}
}

// changed reports whether a watched file changed since the last call. It never blocks.
func (r *reloader) changed() bool {
	select {
	case <-r.events:
		return true
	default:
		return false
	}
}

func (r *reloader) close() {
	_ = r.watcher.Close()
	<-r.done
}
