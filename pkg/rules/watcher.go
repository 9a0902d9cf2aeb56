package rules

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/quotecms/quotetag/pkg/logging"
)

// DefaultDebounce is how long the watcher waits for further writes
// before reloading. Editors and atomic-save tools emit bursts of
// events for a single logical change.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc receives the outcome of each watcher-triggered reload
type ReloadFunc func(ReloadResult, error)

// Watcher reloads a Store whenever its rules file changes on disk.
// The parent directory is watched rather than the file itself, since
// editors typically replace the file by rename.
type Watcher struct {
	store    *Store
	path     string
	debounce time.Duration
	onReload ReloadFunc
	logger   zerolog.Logger
}

// NewWatcher creates a watcher for the given rules file. onReload may
// be nil; debounce <= 0 selects DefaultDebounce.
func NewWatcher(store *Store, path string, debounce time.Duration, onReload ReloadFunc) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		store:    store,
		path:     path,
		debounce: debounce,
		onReload: onReload,
		logger:   logging.GetLogger("rules.watcher"),
	}
}

// Run watches until ctx is cancelled. Reload failures are reported
// through the callback and logged, never fatal: the store keeps its
// previous snapshot.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fsw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return err
	}

	w.logger.Info().
		Str("file", w.path).
		Dur("debounce", w.debounce).
		Msg("Watching rules file for changes")

	target := filepath.Clean(w.path)
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("Rules file changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			result, err := w.store.ReloadFile(w.path)
			if err != nil {
				w.logger.Warn().Err(err).Msg("Reload after file change failed, previous rules retained")
			} else {
				w.logger.Info().
					Int64("version", result.Version).
					Int("rules", result.RuleCount).
					Msg("Rules reloaded after file change")
			}
			if w.onReload != nil {
				w.onReload(result, err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}
