package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: print-to-pdf [convert] --html-path <file> --out <file> [flags]")
	fmt.Fprintln(w, "       print-to-pdf <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Print a local HTML file to PDF (default)")
	fmt.Fprintln(w, "  doctor     Check that Chrome can be found and started")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'print-to-pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: print-to-pdf --html-path <file> --out <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Load a local HTML file in headless Chrome and save it as PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --html-path <path>    HTML file to print (required)")
	fmt.Fprintln(w, "      --out <path>          PDF file to write, replaced if it exists (required)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --layout <s>          legal (8.5x11in portrait) or slideshow (16x9in landscape)")
	fmt.Fprintln(w, "                            Case-insensitive; default: legal")
	fmt.Fprintln(w, "      --scale <f>           Print scale, overrides the layout's 1.0")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "      --engine <s>          Driver: rod, chromedp (default: rod)")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome/Chromium executable (env: ROD_BROWSER_BIN)")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (env: ROD_NO_SANDBOX=1)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Overall timeout, e.g. 30s, 2m (default: none)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --log-file <path>     Also write JSON logs to a rotated file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PRINT_TO_PDF_CONFIG, PRINT_TO_PDF_LAYOUT, PRINT_TO_PDF_ENGINE,")
	fmt.Fprintln(w, "  PRINT_TO_PDF_TIMEOUT, PRINT_TO_PDF_LOG_FILE")
	fmt.Fprintln(w, "  Flags override environment, which overrides the config file.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: print-to-pdf doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome installation, sandbox settings and the environment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Machine-readable output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: print-to-pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: print-to-pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
