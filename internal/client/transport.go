package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transport performs the raw HTTP calls for a DeviceClient.
type Transport interface {
	// GetText fails on any network error or non-2xx status.
	GetText(ctx context.Context, url string) (string, error)
	// Put fails only on network errors; a non-2xx status is reported as false.
	Put(ctx context.Context, url string) (bool, error)
}

const (
	DefaultTimeout = 10 * time.Second
	userAgent      = "droidcam-cli"
)

type RestyTransport struct {
	HTTP *resty.Client
}

// NewRestyTransport wraps r, or a fresh resty client when r is nil.
func NewRestyTransport(r *resty.Client, timeout time.Duration) *RestyTransport {
	if r == nil {
		r = resty.New()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	r.SetTimeout(timeout)
	r.SetHeader("User-Agent", userAgent)
	return &RestyTransport{HTTP: r}
}

func (t *RestyTransport) GetText(ctx context.Context, url string) (string, error) {
	resp, err := t.HTTP.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", &ConnectivityError{URL: url, Err: err}
	}
	if !resp.IsSuccess() {
		return "", &ConnectivityError{
			URL: url,
			Err: fmt.Errorf("request failed: %d", resp.StatusCode()),
		}
	}
	// resty's String() trims whitespace; callers want the body as sent.
	return string(resp.Body()), nil
}

func (t *RestyTransport) Put(ctx context.Context, url string) (bool, error) {
	resp, err := t.HTTP.R().
		SetContext(ctx).
		Put(url)
	if err != nil {
		return false, &ConnectivityError{URL: url, Err: err}
	}
	return resp.IsSuccess(), nil
}
