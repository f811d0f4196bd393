package client

import "errors"

var (
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrUnexpectedServerVersion = errors.New("unexpected server version")
	ErrUnknownVersion          = errors.New("unknown bitcoin core version")
)
