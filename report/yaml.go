package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAML renders the result as a YAML document.
type YAML struct{}

func (YAML) Report(w io.Writer, res Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}

	return enc.Close()
}
