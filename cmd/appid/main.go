// Command appid prints the application id of desktop-entry files the way
// appwatch derives it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/capcom6/appwatch/internal/appdirs"
	"github.com/capcom6/appwatch/internal/appid"
	"github.com/urfave/cli/v3"
)

var ErrNoFiles = errors.New("at least one file is required")

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "appid",
		Usage:     "print application ids of desktop entries",
		ArgsUsage: "file...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "application directory, the XDG application directories when not set",
				Sources: cli.EnvVars("APPWATCH_DIRS"),
			},
			&cli.BoolFlag{
				Name:  "standard",
				Usage: "ignore the vendor key and derive the id from the path only",
			},
		},
		Action: run,
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return ErrNoFiles
	}

	resolver := appid.New(appdirs.ApplicationDirs(cmd.StringSlice("dir")))
	resolve := resolver.Resolve
	if cmd.Bool("standard") {
		resolve = resolver.ResolveStandard
	}

	for _, path := range cmd.Args().Slice() {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("filepath.Abs: %w", err)
		}

		fmt.Fprintf(os.Stdout, "%s\t%s\n", resolve(absPath), absPath)
	}

	return nil
}
