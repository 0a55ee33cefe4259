package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indigo-web/headercount/errors"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}

	return out
}

func TestNew(t *testing.T) {
	c := New()

	t.Run("zero counts", func(t *testing.T) {
		require.Equal(t, len(WellKnown), c.Len())
		for _, e := range c.Entries() {
			require.Zero(t, e.Count, e.Name)
		}
	})

	t.Run("catalog order", func(t *testing.T) {
		require.Equal(t, WellKnown, names(c.Entries()))
	})

	t.Run("unique names", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, e := range c.Entries() {
			require.False(t, seen[e.Name], e.Name)
			seen[e.Name] = true
		}
	})
}

func TestBucket(t *testing.T) {
	c := New()

	t.Run("insertion order", func(t *testing.T) {
		bucket, err := c.Bucket('T')
		require.NoError(t, err)
		require.Equal(t, []string{"TE", "Trailer", "Transfer-Encoding"}, names(bucket))
	})

	t.Run("case insensitive letter", func(t *testing.T) {
		upper, err := c.Bucket('W')
		require.NoError(t, err)
		lower, err := c.Bucket('w')
		require.NoError(t, err)
		require.Equal(t, upper, lower)
		require.Equal(t, []string{"Warning", "WWW-Authenticate"}, names(lower))
	})

	t.Run("every entry is in its letter bucket", func(t *testing.T) {
		total := 0
		for letter := byte('A'); letter <= 'Z'; letter++ {
			bucket, err := c.Bucket(letter)
			require.NoError(t, err)
			for _, e := range bucket {
				require.Equal(t, letter, e.Name[0]&^0x20, e.Name)
			}
			total += len(bucket)
		}

		require.Equal(t, c.Len(), total)
	})

	t.Run("empty buckets", func(t *testing.T) {
		for _, letter := range []byte("BGJKNOQXYZ") {
			bucket, err := c.Bucket(letter)
			require.NoError(t, err)
			require.Empty(t, bucket, string(letter))
		}
	})

	t.Run("invalid letter", func(t *testing.T) {
		for _, letter := range []byte("0-_ :\x00\xff") {
			_, err := c.Bucket(letter)
			require.ErrorIs(t, err, errors.ErrInvalidLetter)
		}
	})

	t.Run("view onto the catalog", func(t *testing.T) {
		c := New()
		bucket, err := c.Bucket('d')
		require.NoError(t, err)
		bucket[0].Count = 5

		for _, e := range c.Entries() {
			if e.Name == "Date" {
				require.Equal(t, 5, e.Count)
			}
		}
	})

	t.Run("append does not spill into the next bucket", func(t *testing.T) {
		c := New()
		bucket, err := c.Bucket('A')
		require.NoError(t, err)
		_ = append(bucket, Entry{Name: "Overwritten"})

		next, err := c.Bucket('C')
		require.NoError(t, err)
		require.Equal(t, "Cache-Control", next[0].Name)
	})
}

func TestNewFrom(t *testing.T) {
	t.Run("groups by letter preserving order", func(t *testing.T) {
		c, err := NewFrom([]string{"Zeta", "alpha", "Zulu", "Beta", "Alpha"})
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "Alpha", "Beta", "Zeta", "Zulu"}, names(c.Entries()))
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := NewFrom([]string{"Host", "Date", "Host"})
		require.ErrorIs(t, err, errors.ErrDuplicateName)
	})

	t.Run("bad first letter", func(t *testing.T) {
		for _, name := range []string{"", "1st", "-Host", "Ünicode"} {
			_, err := NewFrom([]string{name})
			require.ErrorIs(t, err, errors.ErrInvalidLetter, name)
		}
	})
}

func TestReset(t *testing.T) {
	c := New()
	entry, found := NewClassifier(c, Exact).Classify("Host")
	require.True(t, found)
	entry.Count = 3

	c.Reset()
	for _, e := range c.Entries() {
		require.Zero(t, e.Count)
	}
}

func TestEntriesIsSnapshot(t *testing.T) {
	c := New()
	snapshot := c.Entries()
	snapshot[0].Count = 42

	require.Zero(t, c.Entries()[0].Count)
}
