package core

import (
	"errors"
	"os"

	"github.com/Germanized/GradleInstaller/contracts"
)

type CleanupOutcome int

const (
	ArchiveRemoved CleanupOutcome = iota
	ArchiveAbsent
	ArchiveRemovalFailed
)

// RemoveArchive deletes the temporary download. It never fails the run.
func RemoveArchive(disk contracts.Deleter, archivePath string) (CleanupOutcome, error) {
	err := disk.Delete(archivePath)
	switch {
	case err == nil:
		return ArchiveRemoved, nil
	case errors.Is(err, os.ErrNotExist):
		return ArchiveAbsent, nil
	default:
		return ArchiveRemovalFailed, err
	}
}
