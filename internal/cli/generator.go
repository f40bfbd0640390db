package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/toyz/ipcgen/internal/generator"
	"github.com/toyz/ipcgen/internal/models"
	"github.com/toyz/ipcgen/internal/registry"
	"github.com/toyz/ipcgen/internal/scanner"
	"github.com/toyz/ipcgen/internal/utils"
)

// Generator coordinates the CLI generation process: one complete pass walks
// the input tree, matches annotations, accumulates the endpoint registry and
// writes the generated module. All pass state is created fresh per pass.
type Generator struct {
	scanner       *scanner.Scanner
	codeGenerator generator.CodeGenerator
	fileProcessor *utils.FileProcessor
	diagnostics   *utils.DiagnosticSystem
	config        Config
	summary       models.PassSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(config Config, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:       scanner.NewScanner(),
		codeGenerator: generator.NewGenerator(),
		fileProcessor: utils.NewFileProcessor(),
		diagnostics:   diagnostics,
		config:        config,
	}
}

// GetSummary returns the statistics collected by the most recent pass
func (g *Generator) GetSummary() models.PassSummary {
	return g.summary
}

// RunOnce executes one complete generation pass and returns its elapsed wall
// time. A duplicate (group, method) definition or an I/O failure aborts the
// pass before the output file is touched; the previous output file content
// stays intact.
func (g *Generator) RunOnce() (time.Duration, error) {
	startTime := time.Now()
	g.summary = models.PassSummary{}

	info, err := os.Stat(g.config.InputDir)
	if err != nil {
		return 0, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    g.config.InputDir,
			Message: "input directory is not accessible",
			Cause:   err,
		}
	}
	if !info.IsDir() {
		return 0, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    g.config.InputDir,
			Message: "input path is not a directory",
		}
	}

	endpoints := registry.NewEndpointRegistry()

	files, err := g.fileProcessor.WalkFiles(g.config.InputDir, utils.FileWalkOptions{
		FileFilter:      utils.DefaultTSFileFilter(),
		DirectoryFilter: utils.DefaultDirectoryFilter(),
		OnError: func(path string, walkErr error) {
			// Unreadable entries are soft failures, the walk continues
			g.diagnostics.Error("Error reading directory entry %s: %v", path, walkErr)
		},
	})
	if err != nil {
		return 0, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    g.config.InputDir,
			Message: "failed to walk input directory",
			Cause:   err,
		}
	}

	g.summary.FilesScanned = len(files)

	for _, filePath := range files {
		if err := g.processFile(filePath, endpoints); err != nil {
			return 0, err
		}
	}

	g.summary.Groups = endpoints.GroupCount()
	g.summary.Methods = endpoints.MethodCount()

	module, err := g.codeGenerator.GenerateModule(endpoints, g.config.OutputFile)
	if err != nil {
		return 0, &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			File:    g.config.OutputFile,
			Message: "failed to render client module",
			Cause:   err,
		}
	}

	// Fully rendered in memory, single whole-file write: an aborted pass
	// never leaves a truncated output file behind.
	if err := os.WriteFile(module.FilePath, []byte(module.Content), 0644); err != nil {
		return 0, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    module.FilePath,
			Message: "failed to write output file",
			Cause:   err,
		}
	}

	g.diagnostics.Verbose("Wrote %s (%d groups, %d methods)",
		module.FilePath, g.summary.Groups, g.summary.Methods)

	return time.Since(startTime), nil
}

// processFile matches one source file and registers its endpoints
func (g *Generator) processFile(filePath string, endpoints *registry.EndpointRegistry) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    filePath,
			Message: "failed to read source file",
			Cause:   err,
		}
	}

	result := g.scanner.MatchFile(string(content))
	if !result.Matched() {
		g.diagnostics.Debug("Skipping %s: %s", filePath, result.Skip)
		return nil
	}

	g.summary.FilesMatched++
	match := result.Match
	g.diagnostics.Verbose("Matched %s: group %q, class %s, %d methods",
		filePath, match.Group, match.ClassName, len(match.Methods))

	for _, method := range match.Methods {
		params := scanner.ParseParams(method.RawParams)
		paramDefs, paramNames := scanner.RenderParams(params)

		endpoint := models.Endpoint{
			ParamDefs:  paramDefs,
			ParamNames: paramNames,
			Route:      fmt.Sprintf("%s-%s", match.Group, method.Name),
		}

		if err := endpoints.Register(match.Group, method.Name, endpoint, match.ClassName); err != nil {
			return err
		}
	}

	return nil
}

// Run executes a single generation pass and reports its result
func (g *Generator) Run() error {
	elapsed, err := g.RunOnce()
	if err != nil {
		return err
	}

	g.diagnostics.Finished(elapsed)
	return nil
}

// Watch runs the generator continuously: one initial pass, then exactly one
// pass per debounced change-event batch, strictly sequentially. Pass failures
// are reported and the loop keeps waiting for the next batch; the loop ends
// only when the watcher's event channel closes.
func (g *Generator) Watch() error {
	watcher, err := NewWatcher(WatcherConfig{
		RootDir:  g.config.InputDir,
		Debounce: time.Second,
		OnError: func(watchErr error) {
			g.diagnostics.Failure("%v", watchErr)
		},
	})
	if err != nil {
		return utils.WrapWatchError(g.config.InputDir, err)
	}
	defer watcher.Stop()

	events, err := watcher.Start()
	if err != nil {
		return utils.WrapWatchError(g.config.InputDir, err)
	}

	g.diagnostics.WatchBanner(g.config.InputDir)

	if elapsed, err := g.RunOnce(); err != nil {
		g.diagnostics.Failure("Error during initial processing: %v", err)
	} else {
		g.diagnostics.Finished(elapsed)
	}

	g.processEvents(events)

	return nil
}

// processEvents drains the change-signal channel, running exactly one pass
// per delivered batch. The consuming loop is the only place passes start, so
// passes never overlap and an in-flight pass always runs to completion before
// the next batch is considered. A failed pass is reported and the loop keeps
// draining; the loop ends when the channel closes.
func (g *Generator) processEvents(events <-chan struct{}) {
	for range events {
		g.diagnostics.ChangeDetected()

		if elapsed, err := g.RunOnce(); err != nil {
			g.diagnostics.Failure("%v", err)
		} else {
			g.diagnostics.Finished(elapsed)
		}
	}
}
