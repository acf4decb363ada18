package history

import (
	"errors"
	"fmt"
)

var (
	ErrStoreClosed = errors.New("history store is closed")
	ErrInvalidRun  = errors.New("invalid run")
)

type OpError struct {
	Op  string
	ID  int64
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s run %d: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s runs: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapRunErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, ID: id, Err: err}
}
