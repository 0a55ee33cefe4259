package report

import (
	"bufio"
	"io"
	"strconv"
)

// Text writes a "<name> was seen <count>" line per entry, zero counts included. The
// stats aren't rendered.
type Text struct{}

func (Text) Report(w io.Writer, res Result) error {
	buff := bufio.NewWriter(w)
	for _, e := range res.Headers {
		_, _ = buff.WriteString(e.Name)
		_, _ = buff.WriteString(" was seen ")
		_, _ = buff.WriteString(strconv.Itoa(e.Count))
		_ = buff.WriteByte('\n')
	}

	return buff.Flush()
}
