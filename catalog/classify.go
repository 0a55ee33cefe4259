package catalog

import (
	"github.com/indigo-web/utils/strcomp"

	"github.com/indigo-web/headercount/internal/strutil"
)

// Matcher reports whether a token names the header.
type Matcher func(token, name string) bool

var (
	// Exact compares the token byte by byte. Only the bucket lookup tolerates a
	// different case of the first letter, so "accept" does not match "Accept".
	Exact Matcher = func(token, name string) bool {
		return token == name
	}
	// Fold compares the whole name case-insensitively.
	Fold Matcher = strcomp.EqualFold
)

// Classifier maps header tokens onto catalog entries.
type Classifier struct {
	catalog *Catalog
	match   Matcher
}

func NewClassifier(c *Catalog, match Matcher) Classifier {
	if match == nil {
		match = Exact
	}

	return Classifier{
		catalog: c,
		match:   match,
	}
}

// Classify returns the catalog entry the token names. The entry may be mutated in place.
// Tokens that are empty, don't start with an ASCII letter or just aren't known result
// in false. This is a regular outcome, not an error.
func (c Classifier) Classify(token string) (*Entry, bool) {
	if len(token) == 0 {
		return nil, false
	}

	idx, ok := strutil.LetterIndex(token[0])
	if !ok {
		return nil, false
	}

	bucket := c.catalog.bucket(idx)
	for i := range bucket {
		if c.match(token, bucket[i].Name) {
			return &bucket[i], true
		}
	}

	return nil, false
}
