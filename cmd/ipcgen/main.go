package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toyz/ipcgen/internal/cli"
	"github.com/toyz/ipcgen/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		inputFlag   = flag.String("input", "", "Root directory containing annotated TypeScript files (required)")
		outputFlag  = flag.String("output", "output.ts", "Output file for the generated client module")
		watchFlag   = flag.Bool("watch", false, "Watch the input directory and re-generate on changes")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "IPC Endpoint Generator\n")
		fmt.Fprintf(os.Stderr, "Recursively scans a directory for TypeScript files with @backendAPI annotations\n")
		fmt.Fprintf(os.Stderr, "and generates a single client module forwarding calls over ipcRenderer.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nAnnotations:\n")
		fmt.Fprintf(os.Stderr, "  @backendAPI(\"Group\")   Declares the API group for a file's class\n")
		fmt.Fprintf(os.Stderr, "  @route()               Marks an async method for client generation\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input ./src                          # Generate output.ts once\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input ./src --output api/client.ts   # Custom output location\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input ./src --watch                  # Re-generate on file changes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input ./src --verbose                # Enable detailed output\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Validate arguments
	if *inputFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: The --input directory is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	config := cli.Config{
		InputDir:   *inputFlag,
		OutputFile: *outputFlag,
		Watch:      *watchFlag,
		Verbose:    *verboseFlag,
	}

	generator := cli.NewGenerator(config, diagnostics)

	if config.Watch {
		// Watch mode never exits on a processing failure; only a watcher
		// initialization failure or a closed event stream ends it.
		if err := generator.Watch(); err != nil {
			diagnostics.Failure("%v", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.Run(); err != nil {
		diagnostics.Failure("%v", err)
		os.Exit(1)
	}

	// Show final summary in verbose mode
	if *verboseFlag {
		summary := generator.GetSummary()
		diagnostics.Summary("Generation Complete!", map[string]interface{}{
			"Files scanned": summary.FilesScanned,
			"Files matched": summary.FilesMatched,
			"Groups":        summary.Groups,
			"Methods":       summary.Methods,
		})
	}
}
