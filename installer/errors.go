package installer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrDetectionMiss means an installer found no file it recognizes
	ErrDetectionMiss = errors.New("no recognized file in archive")

	// ErrManifestParse means the manifest isn't well-formed
	ErrManifestParse = errors.New("could not parse extension manifest")

	// ErrManifestFieldMissing means the manifest parsed fine, but
	// carries no usable identity
	ErrManifestFieldMissing = errors.New("extension manifest has no usable name")

	// ErrNoAnchorFile means a plan was requested for an anchor that
	// isn't part of the listing. Orchestration should make that impossible.
	ErrNoAnchorFile = errors.New("anchor file not found in archive")

	// ErrUnrecognizedMod is what callers get when no installer applies
	ErrUnrecognizedMod = errors.New("unrecognized or unsupported mod")
)

// UnrecognizedModError is returned when every installer gave up.
// Its message is deliberately generic; the individual failures are
// kept around for diagnostics only.
type UnrecognizedModError struct {
	Attempts []*Attempt
}

// An Attempt records why one installer couldn't handle an archive
type Attempt struct {
	Installer InstallerType
	Err       error
}

var _ error = (*UnrecognizedModError)(nil)

func (e *UnrecognizedModError) Error() string {
	return ErrUnrecognizedMod.Error()
}

func (e *UnrecognizedModError) Is(target error) bool {
	return target == ErrUnrecognizedMod
}

// Diagnostics lists what each installer had to say, one per line
func (e *UnrecognizedModError) Diagnostics() string {
	var lines []string
	for _, a := range e.Attempts {
		lines = append(lines, fmt.Sprintf("%s: %v", a.Installer, a.Err))
	}
	return strings.Join(lines, "\n")
}
