package service

import "fmt"

var (
	ErrInvalidEvent       = fmt.Errorf("invalid log event")
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
	ErrCannotIngest       = fmt.Errorf("cannot ingest log event")
	ErrCannotQuery        = fmt.Errorf("cannot query metrics")
)
