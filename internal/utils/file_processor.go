package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FileProcessor provides utilities for walking source trees
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// WalkErrorHandler is invoked for directory entries that cannot be read.
// The walk continues after the handler returns.
type WalkErrorHandler func(path string, err error)

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	OnError         WalkErrorHandler
}

// DefaultTSFileFilter filters for regular .ts files
func DefaultTSFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		return strings.HasSuffix(info.Name(), ".ts")
	}
}

// DefaultDirectoryFilter skips common directories that shouldn't contain source code
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"node_modules": true,
		"vendor":       true,
		".git":         true,
		".svn":         true,
		".hg":          true,
		"build":        true,
		"dist":         true,
		"target":       true,
	}

	return func(path string, info os.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		// Skip known directories
		return !skipDirs[name]
	}
}

// WalkFiles walks through files in a directory tree with filtering.
// Entry errors are passed to OnError (when set) and skipped; they never
// abort the walk.
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.WalkDir(rootDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			if options.OnError != nil {
				options.OnError(path, err)
			}
			return nil
		}

		// Apply directory filter. The root is always walked: the caller
		// asked for this directory, whatever its name.
		if entry.IsDir() {
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		// Apply file filter
		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matchedFiles = append(matchedFiles, path)
		}

		return nil
	})

	return matchedFiles, err
}

// Subdirectories returns rootDir plus every directory below it that passes
// the default directory filter. Used to seed recursive file watching.
func (fp *FileProcessor) Subdirectories(rootDir string) ([]string, error) {
	var dirs []string
	directoryFilter := DefaultDirectoryFilter()

	err := filepath.WalkDir(rootDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			// An unreadable root is fatal, unreadable subentries are not
			if path == rootDir {
				return err
			}
			return nil
		}

		if !entry.IsDir() {
			return nil
		}

		// The root itself is never filtered out
		if path != rootDir && !directoryFilter(path, entry) {
			return filepath.SkipDir
		}

		dirs = append(dirs, path)
		return nil
	})

	return dirs, err
}
