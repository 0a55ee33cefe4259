package report

import (
	"fmt"
	"io"

	"github.com/indigo-web/headercount/catalog"
	"github.com/indigo-web/headercount/config"
	"github.com/indigo-web/headercount/counter"
	"github.com/indigo-web/headercount/errors"
)

// Result is everything a run produces.
type Result struct {
	Headers []catalog.Entry `json:"headers" yaml:"headers"`
	Stats   counter.Stats   `json:"stats" yaml:"stats"`
}

// Collect snapshots the catalog and the counter's stats.
func Collect(cat *catalog.Catalog, c *counter.Counter) Result {
	return Result{
		Headers: cat.Entries(),
		Stats:   c.Stats(),
	}
}

// Reporter renders a result. Rendering the same result must always produce the same
// output.
type Reporter interface {
	Report(w io.Writer, res Result) error
}

// New returns the reporter for the format.
func New(format string) (Reporter, error) {
	switch format {
	case config.FormatText:
		return Text{}, nil
	case config.FormatJSON:
		return JSON{}, nil
	case config.FormatYAML:
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownFormat, format)
	}
}
