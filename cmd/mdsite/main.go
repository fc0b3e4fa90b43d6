package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names.
var commands = map[string]bool{
	"build":   true,
	"serve":   true,
	"init":    true,
	"version": true,
	"help":    true,
}

func main() {
	env := DefaultEnv()
	if hasVerboseFlag(os.Args[1:]) {
		env.setVerbosity(false, true)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		env.Logger.Debug(fmt.Sprintf(format, args...))
	}))

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches the command in args and returns the process exit code.
// Without a command, or when the first argument is a flag, build runs.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := "build", args[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		if !commands[rest[0]] {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", rest[0])
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = rest[0], rest[1:]
	}

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "serve":
		err = runServe(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
	case "help":
		err = runHelp(rest, env)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}
