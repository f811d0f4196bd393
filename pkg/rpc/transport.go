package rpc

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Transport sends one encoded request and returns the raw response bytes.
// Implementations must honour ctx: when it is done the call returns and its connection is
// released.
type Transport interface {
	Send(ctx context.Context, body []byte) ([]byte, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, body []byte) ([]byte, error)

// Send calls f.
func (f TransportFunc) Send(ctx context.Context, body []byte) ([]byte, error) {
	return f(ctx, body)
}

var _ Transport = (*HTTPTransport)(nil)

// HTTPTransport posts requests to a bitcoind RPC endpoint.
type HTTPTransport struct {
	url      string
	user     string
	password string
	header   http.Header
	timeout  time.Duration
	client   *http.Client
}

// NewHTTPTransport validates cfg, resolves credentials (reading the cookie file now) and
// returns a transport with its own connection pool.
func NewHTTPTransport(cfg Config) (*HTTPTransport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	user, password, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	proxy := cfg.Proxy
	if proxy == nil {
		proxy = http.ProxyFromEnvironment
	}
	var tlsConf *tls.Config
	if cfg.TLS != nil {
		tlsConf = cfg.TLS.Clone()
	}

	return &HTTPTransport{
		url:      cfg.URL,
		user:     user,
		password: password,
		header:   cfg.Header.Clone(),
		timeout:  timeout,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               proxy,
				TLSClientConfig:     tlsConf,
				DialContext:         (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext,
				TLSHandshakeTimeout: timeout,
				MaxIdleConnsPerHost: 16,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// URL returns the endpoint this transport posts to.
func (t *HTTPTransport) URL() string {
	return t.url
}

// Send blocks for the full round trip, bounded by the configured timeout and ctx.
func (t *HTTPTransport) Send(ctx context.Context, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.user != "" {
		req.SetBasicAuth(t.user, t.password)
	}
	for k, vs := range t.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, classifyError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       data,
		}
	}
	return data, nil
}

// CloseIdleConnections drops pooled keep-alive connections.
func (t *HTTPTransport) CloseIdleConnections() {
	t.client.CloseIdleConnections()
}

func classifyError(err error) error {
	var (
		netErr     net.Error
		recordErr  tls.RecordHeaderError
		certErr    *tls.CertificateVerificationError
		alertErr   tls.AlertError
		unknownCA  x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: %w", ErrConnectionRefused, err)
	case errors.As(err, &recordErr), errors.As(err, &certErr), errors.As(err, &alertErr),
		errors.As(err, &unknownCA), errors.As(err, &hostErr), errors.As(err, &invalidErr):
		return fmt.Errorf("%w: %w", ErrTLS, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
}
