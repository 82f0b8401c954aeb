package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidID       = errors.New("id must be a positive integer")
	ErrNoData          = errors.New("no record data given, use -data or -file")
)
