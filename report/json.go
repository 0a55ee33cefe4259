package report

import (
	"io"

	json "github.com/json-iterator/go"
)

var indented = json.Config{
	IndentionStep:          2,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// JSON renders the result as a single indented JSON document.
type JSON struct{}

func (JSON) Report(w io.Writer, res Result) error {
	stream := indented.BorrowStream(w)
	defer indented.ReturnStream(stream)

	stream.WriteVal(res)
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}

	return stream.Flush()
}
