package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Germanized/GradleInstaller/contracts"
)

// ChecksumIntegrityCheck compares a downloaded archive's SHA-256 against the
// digest the distribution host publishes next to it.
type ChecksumIntegrityCheck struct {
	client  contracts.HTTPGetter
	timeout time.Duration
}

func NewChecksumIntegrityCheck(client contracts.HTTPGetter, timeout time.Duration) *ChecksumIntegrityCheck {
	return &ChecksumIntegrityCheck{client: client, timeout: timeout}
}

func (this *ChecksumIntegrityCheck) Verify(ctx context.Context, checksumURL, actual string) error {
	expected, err := this.published(ctx, checksumURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ChecksumUnavailableErr, err)
	}
	if !strings.EqualFold(expected, actual) {
		return fmt.Errorf("%w: published %s, downloaded %s", contracts.CorruptArchiveErr, expected, actual)
	}
	return nil
}

func (this *ChecksumIntegrityCheck) published(ctx context.Context, checksumURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, this.timeout)
	defer cancel()

	response, err := this.client.Get(ctx, checksumURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = response.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 1024))
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(raw))
	if len(fields) == 0 || len(fields[0]) != 64 {
		return "", malformedChecksumErr
	}
	return strings.ToLower(fields[0]), nil
}

var (
	ChecksumUnavailableErr = errors.New("published checksum unavailable")
	malformedChecksumErr   = errors.New("malformed checksum document")
)
