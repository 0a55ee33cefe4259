package errors

import (
	"errors"
)

var (
	ErrUsage    = errors.New("usage: exactly one input file must be given")
	ErrFileOpen = errors.New("cannot open input file")
	ErrRead     = errors.New("cannot read input")

	ErrInvalidLetter = errors.New("bucket letter must be within A-Z")
	ErrDuplicateName = errors.New("duplicate header name")

	ErrUnknownFormat = errors.New("unknown report format")
	ErrBadConfig     = errors.New("bad config")
)
