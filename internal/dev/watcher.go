package dev

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ChangeKind represents the type of file change.
type ChangeKind int

const (
	ChangeCreated ChangeKind = iota
	ChangeModified
	ChangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCreated:
		return "created"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change represents a detected file change.
type Change struct {
	Path string
	Kind ChangeKind
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch.
	Paths []string

	// Ignore patterns matched against file and directory base names.
	Ignore []string

	// Interval is the polling period.
	Interval time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	".DS_Store",
	"*.tmp",
	"*.swp",
	"*~",
}

// DefaultInterval is the polling period used when none is configured.
const DefaultInterval = time.Second

type fileState struct {
	modTime time.Time
	size    int64
}

// Watcher polls directories for changes. Files present when Start is called
// are the baseline and are not reported.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	files    map[string]fileState
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Ignore == nil {
		config.Ignore = DefaultIgnore
	}

	return &Watcher{
		config: config,
		files:  make(map[string]fileState),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is cancelled and returns ctx.Err(). Calling Start
// on a running watcher returns nil immediately.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.files = w.scan()
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll()
		}
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) poll() {
	current := w.scan()

	w.mu.Lock()
	changes := diffStates(w.files, current)
	w.files = current
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}
	for _, c := range changes {
		callback(c)
	}
}

func (w *Watcher) scan() map[string]fileState {
	files := make(map[string]fileState)
	for _, root := range w.config.Paths {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if w.shouldIgnore(p) {
				if d.IsDir() && p != root {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			files[p] = fileState{modTime: info.ModTime(), size: info.Size()}
			return nil
		})
	}
	return files
}

// diffStates returns the changes between two scans, sorted by path.
func diffStates(before, after map[string]fileState) []Change {
	var changes []Change
	for p, now := range after {
		prev, ok := before[p]
		switch {
		case !ok:
			changes = append(changes, Change{Path: p, Kind: ChangeCreated})
		case !now.modTime.Equal(prev.modTime) || now.size != prev.size:
			changes = append(changes, Change{Path: p, Kind: ChangeModified})
		}
	}
	for p := range before {
		if _, ok := after[p]; !ok {
			changes = append(changes, Change{Path: p, Kind: ChangeRemoved})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes
}

func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
