package registry

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// watchDebounce collapses bursts of filesystem events (a download writes
// thousands of them) into one rescan.
const watchDebounce = 500 * time.Millisecond

// Watcher rescans the registry when the models directory changes, so a
// model dropped into the directory shows up without a restart.
type Watcher struct {
	reg  *Registry
	log  zerolog.Logger
	done chan struct{}
}

// Watch starts a filesystem watcher over the registry's directory.
// Close stops it.
func Watch(reg *Registry, log zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(reg.Dir()); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{reg: reg, log: log, done: make(chan struct{})}
	go w.run(fw)
	return w, nil
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() { close(w.done) }

func (w *Watcher) run(fw *fsnotify.Watcher) {
	defer fw.Close()
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				fire = timer.C
			} else {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("models dir watch error")
		case <-fire:
			timer = nil
			fire = nil
			if err := w.reg.Rescan(); err != nil {
				w.log.Warn().Err(err).Msg("registry rescan failed")
				continue
			}
			w.log.Info().Int("models", w.reg.Len()).Msg("registry rescanned")
		case <-w.done:
			return
		}
	}
}
