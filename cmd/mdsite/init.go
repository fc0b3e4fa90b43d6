package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	flag "github.com/spf13/pflag"
)

// ErrConfigExists indicates init would overwrite a config file without --force.
var ErrConfigExists = errors.New("config file already exists")

// runInit writes the default configuration to mdsite.yaml, or to the path
// given as the only argument.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: init takes at most one path, got %d", ErrUsage, len(positional))
	}

	path := config.DefaultFileName + ".yaml"
	if len(positional) == 1 {
		path = positional[0]
	}
	if fileutil.FileExists(path) && !flags.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}
