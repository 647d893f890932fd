package pkg

import "errors"

var (
	ErrNoInput       = errors.New("no input file")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrUnknownDriver = errors.New("unknown database driver")
)
