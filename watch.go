package fileformat

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// EventOp describes what happened to a watched file.
type EventOp int

const (
	// EventCreate means a file appeared under the watched root.
	EventCreate EventOp = iota
	// EventWrite means a file's content changed.
	EventWrite
	// EventRemove means a file disappeared.
	EventRemove
)

// String returns the operation name.
func (op EventOp) String() string {
	switch op {
	case EventCreate:
		return "create"
	case EventWrite:
		return "write"
	case EventRemove:
		return "remove"
	}
	return "unknown"
}

// Event is one observed change. Create and write events carry the file's
// fresh report, or the error that prevented producing one; remove events
// carry neither.
type Event struct {
	Path   string
	Op     EventOp
	Report *Report
	Err    error
}

// Watcher observes a directory and re-classifies files as they appear or
// change. Events are delivered on the channel returned by Events; the
// delivering goroutine stops when Close is called.
type Watcher struct {
	fsw     *fsnotify.Watcher
	events  chan Event
	opts    Options
	include []glob.Glob
	exclude []glob.Glob
	root    string

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// NewWatcher starts watching root, which must be an existing directory.
// Include/exclude globs are validated up front like the scanner's.
// Subdirectories created under root are picked up automatically.
func NewWatcher(root string, opts ...Option) (*Watcher, error) {
	o := newOptions(opts)

	info, err := os.Stat(root)
	if err != nil {
		return nil, wrapPathError("watch", root, err)
	}
	if !info.IsDir() {
		return nil, &PathError{Op: "watch", Path: root, Err: ErrNotDir}
	}

	include, err := compileGlobs(o.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileGlobs(o.Exclude)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, wrapPathError("watch", root, err)
	}
	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, wrapPathError("watch", root, err)
	}

	w := &Watcher{
		fsw:     fsw,
		events:  make(chan Event),
		opts:    o,
		include: include,
		exclude: exclude,
		root:    root,
		done:    make(chan struct{}),
	}
	go w.forward()
	return w, nil
}

// Events returns the channel change events are delivered on. It is closed
// by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and closes the event channel. It is idempotent;
// calls after the first return ErrClosed.
func (w *Watcher) Close() error {
	err := ErrClosed
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

// forward turns raw fsnotify events into classified Events. It owns the
// events channel and closes it on exit.
func (w *Watcher) forward() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.deliver(Event{Path: w.root, Op: EventWrite, Err: wrapPathError("watch", w.root, err)})
		}
	}
}

// handle processes one raw event: new directories are added to the watch,
// file creates and writes are re-classified, removes and renames are
// forwarded as removals.
func (w *Watcher) handle(event fsnotify.Event) {
	path := event.Name

	switch {
	case event.Op&fsnotify.Create != 0:
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			_ = w.fsw.Add(path)
			return
		}
		if !w.selects(path) {
			return
		}
		w.classify(path, EventCreate)
	case event.Op&fsnotify.Write != 0:
		if !w.selects(path) {
			return
		}
		w.classify(path, EventWrite)
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		if !w.selects(path) {
			return
		}
		w.deliver(Event{Path: path, Op: EventRemove})
	}
}

// classify inspects a changed file and delivers the outcome. A stale
// cache entry keyed by the file's previous size/mtime can never be
// returned again, so replacing it is enough.
func (w *Watcher) classify(path string, op EventOp) {
	report, err := Inspect(path, WithChecksums(w.opts.Checksums...))
	if err != nil {
		w.deliver(Event{Path: path, Op: op, Err: err})
		return
	}
	if w.opts.Cache != nil {
		key := reportCacheKey(path, report.Size, report.ModTime)
		w.opts.Cache.Set(key, report, w.opts.CacheTTL)
	}
	w.deliver(Event{Path: path, Op: op, Report: report})
}

// deliver sends an event unless the watcher is closing.
func (w *Watcher) deliver(event Event) {
	select {
	case w.events <- event:
	case <-w.done:
	}
}

// selects applies the include/exclude globs the way the scanner does.
func (w *Watcher) selects(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, g := range w.exclude {
		if g.Match(rel) || g.Match(base) {
			return false
		}
	}
	if len(w.include) == 0 {
		return true
	}
	for _, g := range w.include {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// pollState is one file's identity snapshot for change polling.
type pollState struct {
	size    int64
	modTime time.Time
}

// PollChanges watches root by periodic comparison of file size and
// modification time, for sources where native filesystem events are
// unavailable (network mounts, some containers). Events are delivered on
// the returned channel until ctx is cancelled, at which point the channel
// is closed. The polling interval comes from WithPollInterval.
func PollChanges(ctx context.Context, root string, opts ...Option) (<-chan Event, error) {
	o := newOptions(opts)

	scanner, err := NewScanner(opts...)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(root); err != nil {
		return nil, wrapPathError("watch", root, err)
	} else if !info.IsDir() {
		return nil, &PathError{Op: "watch", Path: root, Err: ErrNotDir}
	}

	// The baseline must be in place before the caller regains control, or
	// a file created right after this call returns would land in the first
	// snapshot and never produce a create event.
	previous := snapshot(scanner, root)

	events := make(chan Event)
	go func() {
		defer close(events)

		ticker := time.NewTicker(o.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			current := snapshot(scanner, root)
			for path, state := range current {
				before, existed := previous[path]
				if existed && before == state {
					continue
				}
				op := EventWrite
				if !existed {
					op = EventCreate
				}
				report, err := Inspect(path, WithChecksums(o.Checksums...))
				event := Event{Path: path, Op: op, Report: report, Err: err}
				if err != nil {
					event.Report = nil
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
			for path := range previous {
				if _, still := current[path]; still {
					continue
				}
				select {
				case events <- Event{Path: path, Op: EventRemove}:
				case <-ctx.Done():
					return
				}
			}
			previous = current
		}
	}()
	return events, nil
}

// snapshot records size and mtime for every file the scanner's filters
// select under root.
func snapshot(scanner *Scanner, root string) map[string]pollState {
	states := make(map[string]pollState)
	paths, _ := scanner.collect(root)
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil {
			states[path] = pollState{size: info.Size(), modTime: info.ModTime()}
		}
	}
	return states
}
