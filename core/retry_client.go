package core

import (
	"context"
	"errors"
	"time"

	"github.com/smartystreets/clock"
	"github.com/smartystreets/logging"

	"github.com/Germanized/GradleInstaller/contracts"
)

// RetryClient repeats requests that failed before any response body was handed out.
type RetryClient struct {
	inner    contracts.HTTPGetter
	maxRetry int
	pause    time.Duration
	sleeper  *clock.Sleeper
	logger   *logging.Logger
}

func NewRetryClient(inner contracts.HTTPGetter, maxRetry int) *RetryClient {
	return &RetryClient{inner: inner, maxRetry: maxRetry, pause: time.Second * 3}
}

func (this *RetryClient) Get(ctx context.Context, address string) (response contracts.Response, err error) {
	for x := 0; x <= this.maxRetry; x++ {
		response, err = this.inner.Get(ctx, address)
		if err == nil {
			return response, nil
		}
		if !errors.Is(err, contracts.RetryErr) || ctx.Err() != nil {
			return contracts.Response{}, err
		}
		if x < this.maxRetry {
			this.logger.Printf("[WARN] request for %s failed (%s), retry imminent.", address, err)
			this.sleeper.Sleep(this.pause)
		}
	}
	return contracts.Response{}, err
}
