package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const appName = "appwatch"

type Config struct {
	// Dirs overrides the platform application directories when not empty.
	Dirs     []string
	Excludes []string
	Debug    bool
}

func (c *Config) validate() error {
	for _, pattern := range c.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: invalid exclude pattern %q", ErrValidationFailed, pattern)
		}
	}

	return nil
}

// Parse reads the configuration from args (without the program name)
// and the environment. A .env file in the working directory is loaded
// first when present.
func Parse(ctx context.Context, args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	parsed := false
	cmd := &cli.Command{
		Name:      appName,
		Usage:     "report desktop entries added, changed or removed in application directories",
		ArgsUsage: "[dir...]",
		Version:   version(),
		Writer:    os.Stdout,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "application directory to watch, the XDG application directories when not set",
				Sources: cli.EnvVars("APPWATCH_DIRS"),
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "glob pattern of desktop file names to ignore",
				Sources: cli.EnvVars("APPWATCH_EXCLUDE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "debug mode",
				Sources: cli.EnvVars("APPWATCH_DEBUG"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			parsed = true

			cfg.Dirs = append([]string(nil), cmd.StringSlice("dir")...)
			cfg.Dirs = append(cfg.Dirs, cmd.Args().Slice()...)
			cfg.Excludes = append([]string(nil), cmd.StringSlice("exclude")...)
			cfg.Debug = cmd.Bool("debug")

			return nil
		},
	}

	if err := cmd.Run(ctx, append([]string{appName}, args...)); err != nil {
		return cfg, fmt.Errorf("failed to parse flags: %w", err)
	}
	if !parsed {
		return cfg, ErrExit
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
