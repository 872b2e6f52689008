package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

type downloadFileSystem interface {
	contracts.FileCreator
	contracts.Deleter
}

type DownloadReceipt struct {
	BytesWritten int64
	SHA256       string
}

type Downloader struct {
	client      contracts.HTTPGetter
	disk        downloadFileSystem
	chunkSize   int
	readTimeout time.Duration
	logger      *logging.Logger
}

func NewDownloader(client contracts.HTTPGetter, disk downloadFileSystem, chunkSize int, readTimeout time.Duration) *Downloader {
	return &Downloader{client: client, disk: disk, chunkSize: chunkSize, readTimeout: readTimeout}
}

// Download streams address into destination. Whatever goes wrong, no file is
// left behind at destination when an error is returned.
func (this *Downloader) Download(ctx context.Context, address, destination string, sink contracts.ProgressSink) (receipt DownloadReceipt, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stalled atomic.Bool
	watchdog := time.AfterFunc(this.readTimeout, func() {
		stalled.Store(true)
		cancel()
	})
	defer watchdog.Stop()

	response, err := this.client.Get(ctx, address)
	if err != nil {
		return DownloadReceipt{}, this.classify(err, &stalled)
	}
	defer func() { _ = response.Body.Close() }()

	file, err := this.disk.Create(destination)
	if err != nil {
		return DownloadReceipt{}, fmt.Errorf("creating %s: %w", destination, err)
	}

	hasher := sha256.New()
	counter := newProgressCounter(filepath.Base(destination), response.ContentLength, sink)
	writer := io.MultiWriter(file, hasher, counter)

	written, err := this.copyChunks(writer, response.Body, watchdog)
	_ = counter.Close()
	closeErr := file.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("closing %s: %w", destination, closeErr)
	}
	if err == nil && response.ContentLength > 0 && written != response.ContentLength {
		err = fmt.Errorf("%w: received %d of %d bytes", IncompleteDownloadErr, written, response.ContentLength)
	}
	if err != nil {
		this.discard(destination)
		return DownloadReceipt{}, this.classify(err, &stalled)
	}

	this.logger.Printf("[INFO] downloaded %d bytes from %s to %s", written, address, destination)
	return DownloadReceipt{BytesWritten: written, SHA256: hex.EncodeToString(hasher.Sum(nil))}, nil
}

func (this *Downloader) copyChunks(writer io.Writer, body io.Reader, watchdog *time.Timer) (written int64, err error) {
	buffer := make([]byte, this.chunkSize)
	for {
		watchdog.Reset(this.readTimeout)
		count, readErr := body.Read(buffer)
		if count > 0 {
			if _, err = writer.Write(buffer[:count]); err != nil {
				return written, fmt.Errorf("writing archive: %w", err)
			}
			written += int64(count)
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("reading response body: %w", readErr)
		}
	}
}

func (this *Downloader) classify(err error, stalled *atomic.Bool) error {
	if stalled.Load() && !errors.Is(err, contracts.TimeoutErr) {
		return fmt.Errorf("%w: no data received for %s: %s", contracts.TimeoutErr, this.readTimeout, err)
	}
	return err
}

func (this *Downloader) discard(destination string) {
	if err := this.disk.Delete(destination); err != nil && !errors.Is(err, os.ErrNotExist) {
		this.logger.Printf("[WARN] could not remove partial download %s: %s", destination, err)
		return
	}
	this.logger.Printf("[INFO] removed partial download %s", destination)
}

var IncompleteDownloadErr = errors.New("download ended early")
