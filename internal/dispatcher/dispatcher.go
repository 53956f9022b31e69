package dispatcher

import (
	"errors"
	"fmt"
	"log"
	"os"
)

type WatchSet interface {
	Reconcile(root string) ([]string, error)
	IsWatched(path string) bool
	IsRoot(path string) bool
	Forget(path string)
}

type Resolver interface {
	Resolve(path string) string
	ResolveStandard(path string) string
}

// Dispatcher turns change notifications into application events.
// Handlers run synchronously, in subscription order, on the goroutine
// that delivers the notification.
type Dispatcher struct {
	set      WatchSet
	resolver Resolver
	handlers []Handler
}

func New(set WatchSet, resolver Resolver) *Dispatcher {
	return &Dispatcher{
		set:      set,
		resolver: resolver,
		handlers: nil,
	}
}

func (d *Dispatcher) Subscribe(h Handler) {
	d.handlers = append(d.handlers, h)
}

// DirectoryChanged announces desktop files that appeared in root.
func (d *Dispatcher) DirectoryChanged(root string) {
	if !d.set.IsRoot(root) {
		return
	}

	added, err := d.set.Reconcile(root)
	if err != nil {
		log.Printf("[ERROR] %s", err)
		return
	}

	for _, path := range added {
		d.emit(AppAdded, d.resolver.Resolve(path), path)
	}
}

// FileChanged announces a modification or a removal of a watched file.
// The current state of the filesystem decides which one it is.
func (d *Dispatcher) FileChanged(path string) {
	if !d.set.IsWatched(path) {
		return
	}

	exists, err := fileExists(path)
	if err != nil {
		log.Printf("[ERROR] %s", err)
		return
	}

	if !exists {
		// Content is gone, only the path can name the app. A replacement
		// file is picked up by the next directory change.
		d.set.Forget(path)
		d.emit(AppRemoved, d.resolver.ResolveStandard(path), path)
		return
	}

	d.emit(AppChanged, d.resolver.Resolve(path), path)
}

func (d *Dispatcher) emit(eventType EventType, appID, path string) {
	event := Event{
		Type:  eventType,
		AppID: appID,
		Path:  path,
	}

	for _, h := range d.handlers {
		h.HandleEvent(event)
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("can't stat %s: %w", path, err)
	}

	return true, nil
}
