package rpccall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/xbridge-witness/xbwd/internal/config"
	"github.com/xbridge-witness/xbwd/internal/logging"
	"github.com/xbridge-witness/xbwd/internal/severity"
)

const (
	requestTimeout = 16 * time.Second
	// maxResponseSize caps the response body read from the server.
	maxResponseSize = 16 << 20
	// errTransport is the error code reported when no valid response was
	// received from the server.
	errTransport = "transport_error"
)

// Client sends admin requests to a running xbwd server.
type Client struct {
	httpClient *http.Client
}

// Option is a functional option argument to NewClient().
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// NewClient returns a new Client.
func NewClient(options ...Option) *Client {
	c := Client{
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// FromCommandLine sends req to the server at the RPC endpoint in cfg and
// returns the process exit code along with the response to print. Transport
// failures are reported inside the returned response rather than as an
// error.
func (c *Client) FromCommandLine(
	ctx context.Context,
	cfg *config.Config,
	req Request,
	sev severity.Severity,
) (int, Response) {
	log, closer, err := logging.New(cfg, sev)
	if err != nil {
		return 1, transportError(req, fmt.Errorf("couldn't set up logging: %v", err))
	}
	defer closer.Close()
	log = log.With(slog.Any("request", req),
		slog.String("endpoint", cfg.RPCEndpoint.String()))
	log.Debug("sending rpc request")
	res, err := c.call(ctx, cfg.RPCEndpoint, req)
	if err != nil {
		log.Error("rpc request failed", slog.Any("error", err))
		return 1, transportError(req, err)
	}
	if res.Status() == StatusError {
		log.Debug("rpc request returned an error")
		return 1, res
	}
	log.Debug("rpc request succeeded")
	return 0, res
}

func (c *Client) call(
	ctx context.Context,
	endpoint config.Endpoint,
	req Request,
) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("couldn't marshal request: %v", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"http://"+endpoint.String()+"/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("couldn't construct request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("couldn't send request: %v", err)
	}
	defer httpRes.Body.Close()
	data, err := io.ReadAll(io.LimitReader(httpRes.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("couldn't read response: %v", err)
	}
	var res Response
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal response (HTTP %d): %v",
			httpRes.StatusCode, err)
	}
	if res == nil {
		return nil, fmt.Errorf("empty response (HTTP %d)", httpRes.StatusCode)
	}
	return res, nil
}

func transportError(req Request, err error) Response {
	return Response{
		FieldError:        errTransport,
		FieldErrorMessage: err.Error(),
		FieldStatus:       StatusError,
		FieldRequest:      req,
	}
}
