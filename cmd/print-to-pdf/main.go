package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the command words; anything else is a conversion.
var commands = map[string]bool{
	"convert": true,
	"doctor":  true,
	"version": true,
	"help":    true,
}

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// isCommand reports whether arg names a command (case-sensitive).
func isCommand(arg string) bool {
	return commands[arg]
}

// runMain dispatches args (including the program name) and returns the
// process exit code. Errors are printed to env.Stderr with hints.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	cmd := "convert"
	if len(args) > 0 && isCommand(args[0]) {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "print-to-pdf %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args, env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(args, env)
	}

	flags, err := parseConvertFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
