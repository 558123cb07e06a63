package templater

import (
	"context"

	"github.com/hiracky16/sqlfluff/pkg/position"
)

// NameRaw is the registry name of the raw templater.
const NameRaw = "raw"

// RawTemplater is a templater which does nothing: the templated view is
// the source view. It is the default engine for untemplated SQL.
type RawTemplater struct{}

// NewRawTemplater creates a raw templater.
func NewRawTemplater() *RawTemplater {
	return &RawTemplater{}
}

// Name implements Templater.
func (t *RawTemplater) Name() string {
	return NameRaw
}

// Process returns a mapper with no correspondence table, meaning the
// file is not templated.
func (t *RawTemplater) Process(_ context.Context, req Request) (*Result, error) {
	return &Result{
		Mapper: position.NewMapper(req.Source, "", nil),
	}, nil
}
