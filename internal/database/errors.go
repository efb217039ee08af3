package database

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseCorrupted = errors.New("database file is corrupted")
	ErrInvalidRecord     = errors.New("invalid session record")
)

type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSettingErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Key: key, Err: err}
}

func wrapSessionErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "session", Key: id, Err: err}
}
