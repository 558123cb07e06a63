// Package templater defines the template engines that expand SQL files
// before linting. A templater turns a source file into its templated
// form plus a position.Mapper that relates the two, so diagnostics on
// the expanded SQL can be reported against the file the user wrote.
package templater

import (
	"context"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/position"
)

// Request carries the inputs for one templating operation.
type Request struct {
	// Path is the logical file path, used for diagnostics only.
	Path string

	// Source is the raw file content.
	Source string

	// Config supplies templater-specific parameters (e.g. the dataform
	// project and dataset identifiers). May be nil.
	Config *config.Config
}

// Result is the outcome of a templating operation.
type Result struct {
	// Mapper relates the source text to the templated text.
	Mapper *position.Mapper

	// Warnings lists non-fatal issues encountered during expansion,
	// such as references that could not be fully resolved.
	Warnings []string
}

// Templater expands a source SQL file into its templated form.
//
// Implementations must be stateless across calls: all per-file inputs
// arrive in the Request, and the same Request must always yield the
// same Result.
type Templater interface {
	// Name returns the registry name of this templater.
	Name() string

	// Process expands the request's source text and returns the mapper
	// relating it to the expanded form.
	Process(ctx context.Context, req Request) (*Result, error)
}

// SameKind reports whether two templaters are the same concrete kind of
// template-producing strategy. This is a shallow classification check
// used by configuration comparison, not a deep state comparison.
func SameKind(a, b Templater) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name() == b.Name()
}
