package cli

// Config holds the configuration for the CLI generator
type Config struct {
	// InputDir is the root directory scanned recursively for annotated
	// TypeScript files
	InputDir string

	// OutputFile is the destination path for the generated client module
	OutputFile string

	// Watch keeps the generator running and re-generates on file changes
	Watch bool

	// Verbose enables detailed logging and error reporting
	Verbose bool
}
