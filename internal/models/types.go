package models

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeGeneration
	ErrorTypeFileSystem
)

// SkipReason explains why a scanned file contributed no endpoints
type SkipReason int

const (
	// SkipNone means the file was not skipped
	SkipNone SkipReason = iota
	// SkipNoGroupMarker means the file has no @backendAPI marker
	SkipNoGroupMarker
	// SkipNoClassName means a group was declared but no class declaration was found
	SkipNoClassName
)

// String returns a human-readable description of the skip reason
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "not skipped"
	case SkipNoGroupMarker:
		return "no @backendAPI marker"
	case SkipNoClassName:
		return "group declared but no class declaration found"
	default:
		return "unknown"
	}
}

// MethodDeclaration is one @route-annotated async method extracted from a file
type MethodDeclaration struct {
	Name      string // method identifier
	RawParams string // parenthesized parameter text, verbatim
}

// FileMatch holds everything the annotation matcher extracted from one file
type FileMatch struct {
	Group     string              // group name from the @backendAPI marker
	ClassName string              // first class declaration in the file
	Methods   []MethodDeclaration // all @route-annotated methods, in file order
}

// MatchResult is the outcome of matching one file: either a FileMatch or a
// skip reason. Exactly one of the two is meaningful.
type MatchResult struct {
	Match *FileMatch
	Skip  SkipReason
}

// Matched reports whether the file produced a usable match
func (r MatchResult) Matched() bool {
	return r.Match != nil
}

// Parameter is a single name/type pair from a method's parameter list
type Parameter struct {
	Name string
	Type string
}

// Endpoint is the generated call metadata for one (group, method) pair
type Endpoint struct {
	ParamDefs  string // rendered "name: type" list, declaration order
	ParamNames string // rendered bare-name list, same order
	Route      string // invocation channel name, "{group}-{method}"
}

// GeneratedModule represents the rendered client module
type GeneratedModule struct {
	FilePath string // path where the module should be written
	Content  string // generated TypeScript content
}

// PassSummary collects statistics for one generation pass
type PassSummary struct {
	FilesScanned int // .ts files visited by the walk
	FilesMatched int // files that produced a FileMatch
	Groups       int // distinct groups registered
	Methods      int // endpoints registered
}
