package pbxproj

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Backup is a byte-exact copy of a file taken before it is mutated.
type Backup struct {
	Path       string
	BackupPath string
	Size       int64
	Mode       os.FileMode

	data []byte
}

// Bytes returns the content captured by the snapshot.
func (b *Backup) Bytes() []byte {
	return b.data
}

// BackupManager snapshots a file to a sibling temp file and puts it back
// when a mutation has to be undone.
type BackupManager struct {
	fs     afero.Fs
	logger *zap.Logger
}

func NewBackupManager(fs afero.Fs, logger *zap.Logger) *BackupManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupManager{fs: fs, logger: logger}
}

// Snapshot copies path to `<name>.backup-*` in the same directory and checks
// the copy has the original size.
func (m *BackupManager) Snapshot(path string) (*Backup, error) {
	info, err := m.fs.Stat(path)
	if err != nil {
		return nil, &IOError{Op: "backup", Path: path, Err: err}
	}
	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return nil, &IOError{Op: "backup", Path: path, Err: err}
	}

	f, err := afero.TempFile(m.fs, filepath.Dir(path), filepath.Base(path)+".backup-*")
	if err != nil {
		return nil, &IOError{Op: "backup", Path: path, Err: err}
	}
	backupPath := f.Name()
	fail := func(err error) (*Backup, error) {
		_ = f.Close()
		_ = m.fs.Remove(backupPath)
		return nil, &IOError{Op: "backup", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		return fail(err)
	}
	if err := verifyBackup(m.fs, backupPath, int64(len(data))); err != nil {
		_ = m.fs.Remove(backupPath)
		return nil, &IOError{Op: "backup", Path: path, Err: err}
	}

	m.logger.Debug("backup created", zap.String("path", path), zap.String("backup", backupPath), zap.Int("size", len(data)))
	return &Backup{
		Path:       path,
		BackupPath: backupPath,
		Size:       int64(len(data)),
		Mode:       info.Mode().Perm(),
		data:       data,
	}, nil
}

// Restore rewrites the original path with the backup's content.
func (m *BackupManager) Restore(b *Backup) error {
	data, err := afero.ReadFile(m.fs, b.BackupPath)
	if err != nil {
		return &IOError{Op: "restore", Path: b.Path, Err: err}
	}
	if int64(len(data)) != b.Size {
		return &IOError{Op: "restore", Path: b.Path, Err: fmt.Errorf("backup %s has %d bytes, expected %d", b.BackupPath, len(data), b.Size)}
	}
	if err := writeFileAtomic(m.fs, b.Path, data, b.Mode); err != nil {
		return &IOError{Op: "restore", Path: b.Path, Err: err}
	}
	m.logger.Info("restored from backup", zap.String("path", b.Path), zap.String("backup", b.BackupPath))
	return nil
}

// Discard deletes the backup. A failure leaves a stray file behind and is
// only logged.
func (m *BackupManager) Discard(b *Backup) {
	if err := m.fs.Remove(b.BackupPath); err != nil && !os.IsNotExist(err) {
		m.logger.Warn("removing backup failed", zap.String("backup", b.BackupPath), zap.Error(err))
	}
}

func verifyBackup(fs afero.Fs, path string, size int64) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("backup not readable: %w", err)
	}
	if info.Size() != size {
		return fmt.Errorf("backup size mismatch: got %d, expected %d", info.Size(), size)
	}
	return nil
}
