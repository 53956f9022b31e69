package watcher

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/capcom6/appwatch/internal/appid"
	"github.com/capcom6/appwatch/internal/dispatcher"
	"github.com/capcom6/appwatch/internal/watchset"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches application directories and reports desktop-entry
// changes as application events.
type Watcher struct {
	Roots    []string
	Excludes []string

	set        *watchset.Manager
	dispatcher *dispatcher.Dispatcher
	fswatcher  *fsnotify.Watcher
	events     chan dispatcher.Event
}

func New(roots []string, excludes []string) *Watcher {
	return &Watcher{
		Roots:    roots,
		Excludes: excludes,
	}
}

// Watch starts watching. The returned channel is closed when ctx is done
// or the underlying watcher fails. Once it is closed, Watch can be called
// again and starts from a fresh watch set.
func (w *Watcher) Watch(ctx context.Context, wg *sync.WaitGroup) (EventsChannel, error) {
	if w.events != nil {
		return w.events, nil
	}

	var err error
	w.fswatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}

	w.set = watchset.New(w, watchset.WithExcludes(w.Excludes...))
	w.dispatcher = dispatcher.New(w.set, appid.New(w.Roots))

	if err := w.set.Initialize(w.Roots); err != nil {
		w.fswatcher.Close()
		w.fswatcher = nil
		w.set = nil
		w.dispatcher = nil
		return nil, fmt.Errorf("can't initialize watch set: %w", err)
	}

	log.Printf("[DEBUG] watching %v", w.set.Roots())
	for _, file := range w.set.Files() {
		log.Printf("[DEBUG] tracking %s", file)
	}

	events := make(chan dispatcher.Event)
	w.events = events
	w.dispatcher.Subscribe(dispatcher.HandlerFunc(func(event dispatcher.Event) {
		select {
		case events <- event:
		case <-ctx.Done():
		}
	}))

	wg.Add(1)
	go func() {
		defer func() {
			w.fswatcher.Close()
			close(events)
			w.fswatcher = nil
			w.set = nil
			w.dispatcher = nil
			w.events = nil
			wg.Done()
		}()

		for {
			select {
			case event, ok := <-w.fswatcher.Events:
				if !ok {
					return
				}
				w.processEvent(event)

			case err, ok := <-w.fswatcher.Errors:
				if !ok {
					return
				}
				log.Println("[ERROR]", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// WatchDir implements watchset.Registrar. File events arrive through the
// directory watch, so files need no watch of their own.
func (w *Watcher) WatchDir(dir string) error {
	if err := w.fswatcher.Add(dir); err != nil {
		return fmt.Errorf("fswatcher.Add: %w", err)
	}

	return nil
}

func (w *Watcher) processEvent(source fsnotify.Event) {
	log.Printf("[DEBUG] fsnotify: %s", source)

	if w.set.IsRoot(source.Name) && (source.Has(fsnotify.Remove) || source.Has(fsnotify.Rename)) {
		log.Printf("[WARN] watch root %s is gone", source.Name)
		return
	}

	for _, n := range translate(source, w.set.IsRoot) {
		switch n.Kind {
		case FileChanged:
			w.dispatcher.FileChanged(n.Path)
		case DirChanged:
			w.dispatcher.DirectoryChanged(n.Path)
		}
	}
}
