package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/peercoin-tools/coinrpc/pkg/coinrpc"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 5 * time.Second
)

// ErrConfiguration is returned (possibly wrapped) by New for any client
// misconfiguration detected at construction time. Use errors.Is to check
// for it.
var ErrConfiguration = errors.New("invalid client configuration")

// Client represents the middleman for executing JSON-RPC calls against
// remote Peercoin/Bitcoin-family daemons. Client is thread-safe and can be
// used from multiple goroutines.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	ctx      context.Context
	opts     Options
	username string
	password string
	headers  http.Header
	log      *zap.Logger
	requestF func(ctx context.Context, r *coinrpc.Request) (*coinrpc.Response, error)

	latestReqID *atomic.Uint64
	// getNextRequestID returns an ID to be used for the subsequent request
	// creation. It is defined on Client, so that our testing code can
	// override this method for the sake of more predictable request IDs
	// generation behavior.
	getNextRequestID func() uint64
}

// Options defines options for the RPC client. All values are optional. If
// any duration is not specified, a default of 5 seconds is used for requests
// and 4 seconds for dialing. Credentials are deliberately absent here, they
// can only be given to New directly.
type Options struct {
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// Headers are additional HTTP headers attached to every outgoing
	// request. The Content-Type header is fixed to application/json no
	// matter what is set here, and authentication headers are rejected,
	// credentials come only via New arguments.
	Headers map[string]string
	// Logger enables debug-level logging of performed calls. No logging is
	// done when it's nil.
	Logger *zap.Logger
}

// New returns a new Client ready to use, with its underlying HTTP transport
// set up eagerly. The given context bounds the whole lifetime of the client,
// calls made through typed methods inherit it (Call takes its own).
// Credentials are used for HTTP basic authentication on every request.
func New(ctx context.Context, endpoint, username, password string, opts Options) (*Client, error) {
	cl := new(Client)
	err := initClient(ctx, cl, endpoint, username, password, opts)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func initClient(ctx context.Context, cl *Client, endpoint, username, password string, opts Options) error {
	url, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	headers := make(http.Header)
	for k, v := range opts.Headers {
		switch textproto.CanonicalMIMEHeaderKey(k) {
		case "Authorization", "Proxy-Authorization":
			return fmt.Errorf("%w: authentication cannot be set via Options.Headers", ErrConfiguration)
		}
		headers.Set(k, v)
	}
	// The fixed content type always wins over caller-supplied headers.
	headers.Set("Content-Type", "application/json")

	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}

	cl.ctx = ctx
	cl.cli = httpClient
	cl.endpoint = url
	cl.username = username
	cl.password = password
	cl.headers = headers
	cl.log = opts.Logger
	if cl.log == nil {
		cl.log = zap.NewNop()
	}
	cl.latestReqID = atomic.NewUint64(0)
	cl.getNextRequestID = (cl).getRequestID
	cl.opts = opts
	cl.requestF = cl.makeHTTPRequest
	return nil
}

func (c *Client) getRequestID() uint64 {
	return c.latestReqID.Inc()
}

// Endpoint returns the client's endpoint URL in string form.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Close closes unused underlying network connections. It's safe to call it
// more than once.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

// Call performs a single JSON-RPC call with positional parameters and
// returns the raw result field of the daemon answer. It's the engine behind
// every typed method of the Client and an escape hatch for daemon methods
// not covered by them. A daemon-reported failure is returned as
// *coinrpc.Error, transport and decoding failures are returned as they are.
// The given context bounds this call only and can carry a one-off timeout
// tighter than the client-wide one.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	var r = coinrpc.Request{
		JSONRPC: coinrpc.JSONRPCVersion,
		Method:  method,
		Params:  params,
		ID:      c.getNextRequestID(),
	}

	start := time.Now()
	raw, err := c.requestF(ctx, &r)

	if raw != nil && raw.Error != nil {
		c.log.Debug("RPC call failed", zap.String("method", method),
			zap.Uint64("id", r.ID), zap.Duration("took", time.Since(start)),
			zap.Error(raw.Error))
		return nil, raw.Error
	} else if err != nil {
		return nil, err
	} else if raw == nil || raw.Result == nil {
		return nil, errors.New("no result returned")
	}
	c.log.Debug("RPC call done", zap.String("method", method),
		zap.Uint64("id", r.ID), zap.Duration("took", time.Since(start)))
	return raw.Result, nil
}

func (c *Client) performRequest(method string, p []any, v any) error {
	resp, err := c.Call(c.ctx, method, p...)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return json.Unmarshal(resp, v)
}

func (c *Client) makeHTTPRequest(ctx context.Context, r *coinrpc.Request) (*coinrpc.Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(coinrpc.Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), buf)
	if err != nil {
		return nil, err
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	req.SetBasicAuth(c.username, c.password)
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The daemon might send us a proper JSON anyway, so look there first and
	// if it parses, it has more relevant data than HTTP error code.
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
		} else {
			err = fmt.Errorf("JSON decoding: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Ping attempts to create a connection to the endpoint and returns an error
// if there is any.
func (c *Client) Ping() error {
	conn, err := net.DialTimeout("tcp", c.endpoint.Host, c.opts.DialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
