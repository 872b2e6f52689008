package shell

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/Germanized/GradleInstaller/contracts"
)

const userAgent = "gradle-setup"

func NewHTTPClient(connectTimeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   connectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          4,
			IdleConnTimeout:       32 * time.Second,
			TLSHandshakeTimeout:   connectTimeout,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

type HTTPGetter struct {
	client *http.Client
}

func NewHTTPGetter(client *http.Client) *HTTPGetter {
	return &HTTPGetter{client: client}
}

// Get issues a GET request. Failures worth repeating wrap contracts.RetryErr,
// failures caused by a deadline wrap contracts.TimeoutErr.
func (this *HTTPGetter) Get(ctx context.Context, address string) (contracts.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return contracts.Response{}, err
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := this.client.Do(request)
	if err != nil {
		return contracts.Response{}, classifyTransportError(address, err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		_ = response.Body.Close()
		err = fmt.Errorf("%w: GET %s: %s", contracts.StatusErr, address, response.Status)
		if response.StatusCode >= 500 {
			err = fmt.Errorf("%w: %w", contracts.RetryErr, err)
		}
		return contracts.Response{}, err
	}
	return contracts.Response{Body: response.Body, ContentLength: response.ContentLength}, nil
}

func classifyTransportError(address string, err error) error {
	var network net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &network) && network.Timeout():
		return fmt.Errorf("%w: GET %s: %w", contracts.TimeoutErr, address, err)
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET):
		return fmt.Errorf("%w: GET %s: %w", contracts.RetryErr, address, err)
	default:
		return fmt.Errorf("GET %s: %w", address, err)
	}
}
