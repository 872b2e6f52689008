package contracts

import (
	"context"
	"io"
)

type HTTPGetter interface {
	Get(ctx context.Context, address string) (Response, error)
}

type Response struct {
	Body          io.ReadCloser
	ContentLength int64
}
