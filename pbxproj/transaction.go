package pbxproj

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type State int8

const (
	StateIdle State = iota
	StateBackedUp
	StateMutated
	StateValidated
	StateCommitted
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBackedUp:
		return "backed-up"
	case StateMutated:
		return "mutated"
	case StateValidated:
		return "validated"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MutateFunc computes the new document from the current one. It must not
// touch the file itself.
type MutateFunc func(doc Document) (Document, error)

type options struct {
	fs        afero.Fs
	logger    *zap.Logger
	validator Validator
}

// Option configures a Transaction or a Project.
type Option func(*options)

func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithValidator replaces the default structure validator.
func WithValidator(v Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.validator == nil {
		o.validator = NewStructureValidator(o.fs)
	}
	return o
}

// Transaction applies one mutation to one file: back up, mutate in memory,
// write once, validate, then commit or roll back.
type Transaction struct {
	path    string
	op      string
	opts    options
	backups *BackupManager
	logger  *zap.Logger
	state   State
	backup  *Backup
	written bool
}

func NewTransaction(path, op string, opts ...Option) *Transaction {
	o := buildOptions(opts)
	logger := o.logger.With(zap.String("op", op), zap.String("path", path))
	return &Transaction{
		path:    path,
		op:      op,
		opts:    o,
		backups: NewBackupManager(o.fs, logger),
		logger:  logger,
		state:   StateIdle,
	}
}

func (t *Transaction) State() State {
	return t.state
}

// BackupPath is set while a backup exists, and kept after a failed restore
// so the file can be recovered by hand.
func (t *Transaction) BackupPath() string {
	if t.backup == nil {
		return ""
	}
	return t.backup.BackupPath
}

func (t *Transaction) setState(s State) {
	t.state = s
	t.logger.Debug("transaction state", zap.Stringer("state", s))
}

// Run executes the transaction. It can be called once; a transaction that
// finished, successfully or not, refuses to run again.
func (t *Transaction) Run(mutate MutateFunc) error {
	if t.state != StateIdle {
		return fmt.Errorf("%s: %w (state %s)", t.op, ErrTransactionDone, t.state)
	}

	backup, err := t.backups.Snapshot(t.path)
	if err != nil {
		return err
	}
	t.backup = backup
	t.setState(StateBackedUp)

	original := NewDocument(string(backup.Bytes()))
	updated, err := applyMutation(mutate, original)
	if err != nil {
		return t.rollback(fmt.Errorf("%s: %w", t.op, err))
	}

	if updated.String() == original.String() {
		// nothing was written, so there is nothing to validate or undo
		t.backups.Discard(backup)
		t.setState(StateCommitted)
		t.logger.Debug("no changes")
		return nil
	}

	if err := writeFileAtomic(t.opts.fs, t.path, []byte(updated.String()), backup.Mode); err != nil {
		t.written = true
		return t.rollback(&IOError{Op: "write", Path: t.path, Err: err})
	}
	t.written = true
	t.setState(StateMutated)

	report, err := t.opts.validator.Validate(t.path)
	if err != nil {
		return t.rollback(err)
	}
	if !report.OK() {
		return t.rollback(report.Err(t.op))
	}
	t.setState(StateValidated)

	t.backups.Discard(backup)
	t.setState(StateCommitted)
	t.logger.Info("committed")
	return nil
}

func (t *Transaction) rollback(cause error) error {
	t.logger.Warn("rolling back", zap.Error(cause))
	if !t.written {
		// the file was never touched
		t.backups.Discard(t.backup)
		t.setState(StateRolledBack)
		return cause
	}
	if err := t.backups.Restore(t.backup); err != nil {
		t.logger.Error("restore failed, backup kept", zap.String("backup", t.backup.BackupPath), zap.Error(err))
		return &BackupRestoreFailure{
			Op:         t.op,
			Path:       t.path,
			BackupPath: t.backup.BackupPath,
			Cause:      cause,
			RestoreErr: err,
		}
	}
	t.backups.Discard(t.backup)
	t.setState(StateRolledBack)
	return cause
}

func applyMutation(mutate MutateFunc, doc Document) (out Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("mutation panicked: %w", rerr)
				return
			}
			err = fmt.Errorf("mutation panicked: %v", r)
		}
	}()
	if mutate == nil {
		return doc, errors.New("no mutation given")
	}
	return mutate(doc)
}
