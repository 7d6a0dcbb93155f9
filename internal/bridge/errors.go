package bridge

import "fmt"

// noModelError signals Generate/Unload-adjacent misuse: no model loaded.
type noModelError struct{}

func (noModelError) Error() string { return "no model loaded" }

// ErrNoModelLoaded is returned by Generate when called without a loaded model.
func ErrNoModelLoaded() error { return noModelError{} }

// IsNoModelLoaded reports whether err indicates a Generate without a model.
func IsNoModelLoaded(err error) bool {
	_, ok := err.(noModelError)
	return ok
}

// closedError signals use of the engine after Shutdown.
type closedError struct{}

func (closedError) Error() string { return "engine is shut down" }

// IsClosed reports whether err indicates the engine was already shut down.
func IsClosed(err error) bool {
	_, ok := err.(closedError)
	return ok
}

// initError signals Initialize sequencing misuse.
type initError struct{ msg string }

func (e initError) Error() string { return e.msg }

// IsInitMisuse reports whether err indicates wrong Initialize sequencing
// (double init, or an operation before init).
func IsInitMisuse(err error) bool {
	_, ok := err.(initError)
	return ok
}

// loadError wraps a model load failure. The engine guarantees no model is
// left behind when one of these is returned.
type loadError struct {
	path  string
	cause error
}

func (e loadError) Error() string { return fmt.Sprintf("load model %s: %v", e.path, e.cause) }
func (e loadError) Unwrap() error { return e.cause }

// ErrLoadFailed constructs a loadError.
func ErrLoadFailed(path string, cause error) error { return loadError{path: path, cause: cause} }

// IsLoadFailed reports whether err indicates a failed model load.
func IsLoadFailed(err error) bool {
	_, ok := err.(loadError)
	return ok
}

// Generation stages reported by generationError.
const (
	StageTokenize   = "tokenize"
	StageDecode     = "decode"
	StageSample     = "sample"
	StageDetokenize = "detokenize"
)

// generationError wraps a mid-generation failure. Generate returns it
// alongside whatever text was produced before the failing stage.
type generationError struct {
	stage string
	cause error
}

func (e generationError) Error() string { return fmt.Sprintf("generation %s: %v", e.stage, e.cause) }
func (e generationError) Unwrap() error { return e.cause }

// ErrGeneration constructs a generationError for the given stage.
func ErrGeneration(stage string, cause error) error {
	return generationError{stage: stage, cause: cause}
}

// IsGenerationFailed reports whether err indicates an aborted decode loop.
func IsGenerationFailed(err error) bool {
	_, ok := err.(generationError)
	return ok
}

// GenerationStage returns the failing stage for a generation error, or "".
func GenerationStage(err error) string {
	if ge, ok := err.(generationError); ok {
		return ge.stage
	}
	return ""
}

// dependencyUnavailableError signals a missing native runtime (e.g. a
// binary built without the llama/yzma tags) so callers can fall back to
// the remote API path instead of crashing.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a missing/failed
// runtime dependency.
func IsDependencyUnavailable(err error) bool {
	_, ok := err.(dependencyUnavailableError)
	return ok
}
