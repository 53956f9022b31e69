package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/capcom6/appwatch/internal/appdirs"
	"github.com/capcom6/appwatch/internal/config"
	"github.com/capcom6/appwatch/internal/dispatcher"
	"github.com/capcom6/appwatch/internal/watcher"
	"github.com/hashicorp/logutils"
)

//nolint:gochecknoglobals // event markers
var markers = map[dispatcher.EventType]string{
	dispatcher.AppAdded:   "+++",
	dispatcher.AppChanged: "***",
	dispatcher.AppRemoved: "---",
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse(ctx, os.Args[1:])
	if errors.Is(err, config.ErrExit) {
		return
	}
	if err != nil {
		log.Fatalln(err)
	}
	setUpLogging(cfg)

	wg := &sync.WaitGroup{}

	roots := appdirs.ApplicationDirs(cfg.Dirs)
	watch := watcher.New(roots, cfg.Excludes)

	ch, err := watch.Watch(ctx, wg)
	if err != nil {
		log.Fatalln("[ERROR]", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					log.Println("[ERROR] watcher channel closed")
					cancel()
					return
				}
				log.Printf("%s %s\t%s\n", markers[event.Type], event.AppID, event.Path)
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Println("[INFO] Watching", roots)
	wg.Wait()

	log.Println("[INFO] Bye!")
}

func setUpLogging(cfg config.Config) {
	logLevel := "INFO"
	if cfg.Debug {
		logLevel = "DEBUG"
	}

	filter := logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel(logLevel),
		Writer:   os.Stdout,
	}

	log.SetOutput(&filter)
}
