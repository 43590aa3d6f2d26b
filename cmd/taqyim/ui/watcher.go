package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// storeWatcher surfaces external writes to the data file as bubbletea
// messages, so a second taqyim process shows up without restarting.
type storeWatcher struct {
	watcher *fsnotify.Watcher
	base    string
}

// newStoreWatcher watches the directory holding the data file. The directory
// rather than the file itself, because SQLite writes through sibling -wal and
// -journal files and may replace the inode.
func newStoreWatcher(dataPath string) (*storeWatcher, error) {
	if dataPath == "" || dataPath == ":memory:" {
		return nil, fmt.Errorf("no watchable data path")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(dataPath)); err != nil {
		watcher.Close()
		return nil, err
	}
	return &storeWatcher{watcher: watcher, base: filepath.Base(dataPath)}, nil
}

// matches reports whether an event path is the data file or one of its
// SQLite sidecars (-wal, -journal, -shm).
func (w *storeWatcher) matches(name string) bool {
	return strings.HasPrefix(filepath.Base(name), w.base)
}

func (w *storeWatcher) Close() error {
	return w.watcher.Close()
}

// storeChangedMsg signals that another process wrote the data file.
type storeChangedMsg struct{}

// waitForStoreChange blocks until the data file changes, then emits
// storeChangedMsg. The model re-issues the command after every reload.
func waitForStoreChange(w *storeWatcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				if w.matches(ev.Name) {
					return storeChangedMsg{}
				}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}
