package strutil

import "bytes"

// CutToken returns everything before the first colon. The token is neither trimmed
// nor validated. The second return value is false if the line has no colon at all.
func CutToken(line []byte) (token []byte, found bool) {
	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return nil, false
	}

	return line[:colon], true
}

// LetterIndex maps an ASCII letter of any case into 0..25.
func LetterIndex(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	default:
		return 0, false
	}
}
