package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/mholt/archiver"

	"github.com/Germanized/GradleInstaller/contracts"
)

type ZipExtractor struct{}

func NewZipExtractor() *ZipExtractor {
	return &ZipExtractor{}
}

// Extract validates every entry of the zip at archivePath before unpacking it
// under destination. Structural or checksum damage wraps contracts.CorruptArchiveErr.
func (this *ZipExtractor) Extract(archivePath, destination string) error {
	if err := validateZip(archivePath); err != nil {
		return err
	}
	unpacker := archiver.NewZip()
	unpacker.OverwriteExisting = true
	unpacker.MkdirAll = true
	if err := unpacker.Unarchive(archivePath, destination); err != nil {
		return fmt.Errorf("unpacking %s: %w", archivePath, err)
	}
	return nil
}

func validateZip(archivePath string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return classifyZipError(archivePath, err)
	}
	defer func() { _ = reader.Close() }()

	for _, entry := range reader.File {
		if err = validateEntry(entry); err != nil {
			return classifyZipError(archivePath+": "+entry.Name, err)
		}
	}
	return nil
}

func validateEntry(entry *zip.File) error {
	if entry.FileInfo().IsDir() {
		return nil
	}
	contents, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() { _ = contents.Close() }()
	_, err = io.Copy(io.Discard, contents)
	return err
}

func classifyZipError(subject string, err error) error {
	if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrChecksum) ||
		errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: %w", contracts.CorruptArchiveErr, subject, err)
	}
	return fmt.Errorf("%s: %w", subject, err)
}
