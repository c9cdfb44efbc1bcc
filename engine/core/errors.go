package core

import (
	"errors"
)

var (
	ErrNotInitialized = errors.New("subsystem not initialized")
	ErrQuit           = errors.New("application quit requested")
	ErrUnknown        = errors.New("unknown")
)
