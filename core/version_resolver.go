package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"
	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

type VersionResolver struct {
	client   contracts.HTTPGetter
	endpoint string
	timeout  time.Duration
	logger   *logging.Logger
}

func NewVersionResolver(client contracts.HTTPGetter, endpoint string, timeout time.Duration) *VersionResolver {
	return &VersionResolver{client: client, endpoint: endpoint, timeout: timeout}
}

func (this *VersionResolver) FetchLatestVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, this.timeout)
	defer cancel()

	response, err := this.client.Get(ctx, this.endpoint)
	if err != nil {
		return "", fmt.Errorf("requesting %s: %w", this.endpoint, err)
	}
	defer func() { _ = response.Body.Close() }()

	var document struct {
		Version string `json:"version"`
	}
	if err = json.NewDecoder(io.LimitReader(response.Body, maxVersionDocumentSize)).Decode(&document); err != nil {
		return "", fmt.Errorf("%w: %s", malformedVersionDocumentErr, err)
	}

	version := strings.TrimSpace(document.Version)
	if version == "" {
		return "", missingVersionFieldErr
	}
	if _, err = goversion.NewVersion(version); err != nil {
		return "", fmt.Errorf("%w: %q", unparseableVersionErr, version)
	}

	this.logger.Printf("[INFO] latest version reported by %s: %s", this.endpoint, version)
	return version, nil
}

const maxVersionDocumentSize = 1 << 20

var (
	malformedVersionDocumentErr = errors.New("malformed version document")
	missingVersionFieldErr      = errors.New("version document has no version field")
	unparseableVersionErr       = errors.New("unrecognized version string")
)
