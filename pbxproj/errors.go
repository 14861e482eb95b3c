package pbxproj

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrTransactionDone is returned when Run is called on a transaction that
// already reached a terminal state.
var ErrTransactionDone = errors.New("transaction already finished")

// IOError reports a failed read, write, backup or restore.
type IOError struct {
	Op   string // "read", "write", "backup", "restore"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *IOError) Unwrap() error {
	return e.Err
}

// StructuralError reports a document that does not have the shape an
// operation expects, or that failed validation after a mutation.
type StructuralError struct {
	Op         string
	Section    string
	Reason     string
	Violations []Violation
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Section != "" {
		fmt.Fprintf(&b, " [%s]", e.Section)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	for _, v := range e.Violations {
		b.WriteString("; ")
		b.WriteString(v.String())
	}
	return b.String()
}

// BackupRestoreFailure is the one unrecoverable outcome: the mutation failed
// and the backup could not be put back. The backup file is left on disk.
type BackupRestoreFailure struct {
	Op         string
	Path       string
	BackupPath string
	Cause      error
	RestoreErr error
}

// Error implements the error interface.
func (e *BackupRestoreFailure) Error() string {
	return fmt.Sprintf("%s: restoring %s from %s failed, manual recovery required: %v",
		e.Op, e.Path, e.BackupPath, multierr.Combine(e.Cause, e.RestoreErr))
}

// Unwrap exposes both the original failure and the restore failure.
func (e *BackupRestoreFailure) Unwrap() []error {
	return multierr.Errors(multierr.Combine(e.Cause, e.RestoreErr))
}

func structuralf(op, section, format string, args ...interface{}) error {
	return &StructuralError{Op: op, Section: section, Reason: fmt.Sprintf(format, args...)}
}
