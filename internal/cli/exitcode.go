package cli

import (
	"errors"
	"strings"

	"github.com/soapywu/pbxpatch/internal/config"
	"github.com/soapywu/pbxpatch/internal/finder"
	"github.com/soapywu/pbxpatch/pbxproj"
)

// Exit codes returned by the pbxpatch binary.
const (
	ExitSuccess         = 0  // Everything applied or already present
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // Missing arguments or invalid flags
	ExitPanic           = 3  // Internal panic
	ExitConfigError     = 10 // Invalid configuration, or no project found
	ExitIOError         = 20 // A file could not be read, written or backed up
	ExitStructuralError = 21 // The project does not have the expected shape, changes rolled back
	ExitRestoreFailure  = 22 // Rollback failed, the backup file was kept for manual recovery
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// ExitCodeForError returns the exit code for an error returned by Execute.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// a restore failure also wraps the original I/O or structural error
	var restoreErr *pbxproj.BackupRestoreFailure
	if errors.As(err, &restoreErr) {
		return ExitRestoreFailure
	}

	var structuralErr *pbxproj.StructuralError
	var ioErr *pbxproj.IOError
	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, finder.ErrProjectNotFound):
		return ExitConfigError
	case errors.As(err, &structuralErr):
		return ExitStructuralError
	case errors.As(err, &ioErr):
		return ExitIOError
	}

	// cobra reports these as plain errors
	msg := err.Error()
	if strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "required flag") {
		return ExitUsageError
	}
	return ExitGeneralError
}
