package counter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/utils/uf"
	"go.uber.org/zap"

	"github.com/indigo-web/headercount/catalog"
	"github.com/indigo-web/headercount/config"
	"github.com/indigo-web/headercount/errors"
	"github.com/indigo-web/headercount/internal/strutil"
)

// Stats describes what a run went through.
type Stats struct {
	// Lines is the total number of lines read.
	Lines int `json:"lines" yaml:"lines"`
	// Undelimited lines have no colon, so there's no token to extract from them.
	Undelimited int `json:"undelimited" yaml:"undelimited"`
	// Unrecognized tokens don't name any catalog entry.
	Unrecognized int `json:"unrecognized" yaml:"unrecognized"`
	// Matched tokens incremented some entry.
	Matched int `json:"matched" yaml:"matched"`
}

// Counter walks the input line by line and counts the headers known to the catalog.
type Counter struct {
	classifier catalog.Classifier
	cfg        config.Input
	logger     *zap.Logger
	stats      Stats
}

func New(cat *catalog.Catalog, cfg *config.Config, logger *zap.Logger) *Counter {
	match := catalog.Exact
	if cfg.Match.FoldCase {
		match = catalog.Fold
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Counter{
		classifier: catalog.NewClassifier(cat, match),
		cfg:        cfg.Input,
		logger:     logger,
	}
}

// ProcessLine counts the header the line declares, if any. Lines without a colon and
// unknown tokens are silently skipped.
func (c *Counter) ProcessLine(line []byte) {
	c.stats.Lines++

	token, found := strutil.CutToken(line)
	if !found {
		c.stats.Undelimited++
		return
	}

	// the token must not outlive the line, which is owned by the caller
	entry, found := c.classifier.Classify(uf.B2S(token))
	if !found {
		c.stats.Unrecognized++
		return
	}

	entry.Count++
	c.stats.Matched++
}

// Process consumes the reader until EOF. Any failure while reading is returned wrapped
// into errors.ErrRead, in which case the counts must not be reported.
func (c *Counter) Process(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, c.cfg.InitialBufferSize), c.cfg.MaxLineSize)

	for scanner.Scan() {
		c.ProcessLine(scanner.Bytes())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", errors.ErrRead, c.stats.Lines+1, err)
	}

	c.logger.Debug(
		"input exhausted",
		zap.Int("lines", c.stats.Lines),
		zap.Int("undelimited", c.stats.Undelimited),
		zap.Int("unrecognized", c.stats.Unrecognized),
		zap.Int("matched", c.stats.Matched),
	)

	return nil
}

// ProcessFile opens the file and processes it. The file is always closed before returning.
func (c *Counter) ProcessFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFileOpen, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			c.logger.Warn("closing input file", zap.String("path", path), zap.Error(err))
		}
	}()

	c.logger.Debug("counting headers", zap.String("path", path))

	return c.Process(file)
}

// Stats returns what was processed so far.
func (c *Counter) Stats() Stats {
	return c.stats
}
