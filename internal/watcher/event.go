package watcher

import (
	"path/filepath"

	"github.com/capcom6/appwatch/internal/dispatcher"
	"github.com/fsnotify/fsnotify"
)

const (
	DirChanged  NotificationKind = "dir"
	FileChanged NotificationKind = "file"
)

type NotificationKind string

// Notification is a path-level change as the dispatcher consumes it.
type Notification struct {
	Kind NotificationKind
	Path string
}

type EventsChannel <-chan dispatcher.Event

// translate maps an fsnotify event to notifications. The file
// notification comes first: a file created in a root is not watched
// yet, so it is announced once, by the directory reconciliation. Only a
// create can bring a new file, so only a create reconciles the root.
func translate(source fsnotify.Event, isRoot func(string) bool) []Notification {
	if source.Op == fsnotify.Chmod {
		return nil
	}
	if source.Name == "" || source.Name == "." {
		return nil
	}

	dir := filepath.Dir(source.Name)
	if !isRoot(dir) {
		return nil
	}

	notifications := make([]Notification, 0, 2)
	notifications = append(notifications, Notification{Kind: FileChanged, Path: source.Name})

	if source.Has(fsnotify.Create) {
		notifications = append(notifications, Notification{Kind: DirChanged, Path: dir})
	}

	return notifications
}
