package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var ErrDuplicateKey = errors.New("duplicate key")

const (
	EntityTemplate = "template"
	EntityTimer    = "timer"
)

// StorageError reports a failed write (or open). The transaction that
// produced it has been rolled back.
type StorageError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func wrapErr(resource, op, id string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	if isDuplicate(err) {
		err = fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return &StorageError{Op: op, Resource: resource, ID: id, Err: err}
}

func isDuplicate(err error) bool {
	var sqlErr sqlite3.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	return sqlErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
