package pbxproj

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSnapshotRestoreDiscard(t *testing.T) {
	content := fixture(t)
	fs := memFs(t, content)
	m := NewBackupManager(fs, zap.NewNop())

	b, err := m.Snapshot(projectPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(projectPath), filepath.Dir(b.BackupPath))
	assert.True(t, strings.HasPrefix(filepath.Base(b.BackupPath), "project.pbxproj.backup-"))
	assert.Equal(t, int64(len(content)), b.Size)
	assert.Equal(t, content, readFile(t, fs, b.BackupPath))
	assert.Equal(t, content, string(b.Bytes()))

	require.NoError(t, afero.WriteFile(fs, projectPath, []byte("garbage"), 0o644))
	require.NoError(t, m.Restore(b))
	assert.Equal(t, content, readFile(t, fs, projectPath))

	m.Discard(b)
	exists, err := afero.Exists(fs, b.BackupPath)
	require.NoError(t, err)
	assert.False(t, exists)

	// discarding twice only logs
	m.Discard(b)
}

func TestSnapshotFailsOnMissingFile(t *testing.T) {
	m := NewBackupManager(afero.NewMemMapFs(), nil)
	_, err := m.Snapshot("/nope/project.pbxproj")

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "backup", ioErr.Op)
}

func TestSnapshotFailsOnReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(memFs(t, fixture(t)))
	m := NewBackupManager(fs, nil)

	_, err := m.Snapshot(projectPath)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, projectPath, ioErr.Path)
}

func TestRestoreFailsWhenBackupIsGone(t *testing.T) {
	fs := memFs(t, fixture(t))
	m := NewBackupManager(fs, nil)
	b, err := m.Snapshot(projectPath)
	require.NoError(t, err)
	require.NoError(t, fs.Remove(b.BackupPath))

	err = m.Restore(b)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "restore", ioErr.Op)
}
