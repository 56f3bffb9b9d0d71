package rpcclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/peercoin-tools/coinrpc/pkg/coinrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEndpoint(t *testing.T) {
	host := "http://localhost:9902"
	u, err := url.Parse(host)
	require.NoError(t, err)
	client := Client{
		endpoint: u,
	}
	require.Equal(t, host, client.Endpoint())
}

func TestNewConfigurationErrors(t *testing.T) {
	_, err := New(context.Background(), "://not-an-url", "user", "pass", Options{})
	require.True(t, errors.Is(err, ErrConfiguration))

	for _, h := range []string{"Authorization", "authorization", "Proxy-Authorization", "proxy-authorization"} {
		t.Run(h, func(t *testing.T) {
			_, err := New(context.Background(), "http://localhost:9902", "user", "pass", Options{
				Headers: map[string]string{h: "Basic dXNlcjpwYXNz"},
			})
			require.True(t, errors.Is(err, ErrConfiguration))
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	var (
		mtx  sync.Mutex
		last http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		mtx.Lock()
		last = req.Header.Clone()
		mtx.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"jsonrpc":"2.0","result":1,"error":null}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), srv.URL, "rpcuser", "rpcpass", Options{
		Headers: map[string]string{
			"Content-Type": "text/plain", // Must be overridden.
			"X-Session":    "abc",
		},
	})
	require.NoError(t, err)

	_, err = c.GetBlockCount()
	require.NoError(t, err)

	mtx.Lock()
	defer mtx.Unlock()
	assert.Equal(t, "application/json", last.Get("Content-Type"))
	assert.Equal(t, "abc", last.Get("X-Session"))

	user, pass, ok := (&http.Request{Header: last}).BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "rpcuser", user)
	assert.Equal(t, "rpcpass", pass)
}

func TestTimeoutOptions(t *testing.T) {
	c, err := New(context.Background(), "http://localhost:9902", "user", "pass", Options{})
	require.NoError(t, err)
	require.Equal(t, defaultRequestTimeout, c.cli.Timeout)

	c, err = New(context.Background(), "http://localhost:9902", "user", "pass", Options{
		RequestTimeout: 12 * time.Second,
	})
	require.NoError(t, err)
	require.Equal(t, 12*time.Second, c.cli.Timeout)
}

func TestRequestIDs(t *testing.T) {
	const n = 100

	var (
		mtx sync.Mutex
		ids []uint64
	)
	c, err := New(context.Background(), "http://localhost:9902", "user", "pass", Options{})
	require.NoError(t, err)
	c.requestF = func(ctx context.Context, r *coinrpc.Request) (*coinrpc.Response, error) {
		mtx.Lock()
		ids = append(ids, r.ID)
		mtx.Unlock()
		return nil, errors.New("not connected")
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Call(context.Background(), "getblockcount")
		}()
	}
	wg.Wait()

	require.Len(t, ids, n)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		require.Equal(t, uint64(i+1), id)
	}
}

func TestCallErrors(t *testing.T) {
	var (
		mtx      sync.Mutex
		response string
	)
	setResponse := func(s string) {
		mtx.Lock()
		response = s
		mtx.Unlock()
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		mtx.Lock()
		resp := response
		mtx.Unlock()
		if resp == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), srv.URL, "rpcuser", "wrongpass", Options{})
	require.NoError(t, err)

	t.Run("daemon error is typed", func(t *testing.T) {
		setResponse(`{"id":1,"jsonrpc":"2.0","result":null,"error":{"code":-8,"message":"Block height out of range"}}`)
		_, err := c.Call(context.Background(), "getblockhash", -1)
		require.Error(t, err)

		rpcErr := new(coinrpc.Error)
		require.True(t, errors.As(err, &rpcErr))
		assert.Equal(t, int64(coinrpc.InvalidParameterCode), rpcErr.Code)
		assert.Equal(t, "Block height out of range", rpcErr.Message)
	})
	t.Run("http error without json body", func(t *testing.T) {
		setResponse("")
		_, err := c.Call(context.Background(), "getblockcount")
		require.Error(t, err)
		rpcErr := new(coinrpc.Error)
		require.False(t, errors.As(err, &rpcErr))
		require.Contains(t, err.Error(), fmt.Sprintf("HTTP %d", http.StatusUnauthorized))
	})
	t.Run("garbage in 200 answer", func(t *testing.T) {
		setResponse(`it's not even close to json`)
		_, err := c.Call(context.Background(), "getblockcount")
		require.Error(t, err)
		require.Contains(t, err.Error(), "JSON decoding")
	})
	t.Run("missing result", func(t *testing.T) {
		setResponse(`{"id":1,"jsonrpc":"2.0","error":null}`)
		_, err := c.Call(context.Background(), "getblockcount")
		require.Error(t, err)
		require.Contains(t, err.Error(), "no result")
	})
}

func TestTransportErrorPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	endpoint := srv.URL
	srv.Close() // Guaranteed connection refused from now on.

	c, err := New(context.Background(), endpoint, "rpcuser", "rpcpass", Options{})
	require.NoError(t, err)

	_, err = c.Call(context.Background(), "getblockcount")
	require.Error(t, err)
	rpcErr := new(coinrpc.Error)
	require.False(t, errors.As(err, &rpcErr))
}

func TestPerCallContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-req.Context().Done():
		case <-time.After(time.Second):
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"jsonrpc":"2.0","result":1,"error":null}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), srv.URL, "rpcuser", "rpcpass", Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Call(ctx, "getblockcount")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClose(t *testing.T) {
	c, err := New(context.Background(), "http://localhost:9902", "user", "pass", Options{})
	require.NoError(t, err)
	c.Close()
	c.Close()
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	c, err := New(context.Background(), srv.URL, "rpcuser", "rpcpass", Options{})
	require.NoError(t, err)
	require.NoError(t, c.Ping())

	srv.Close()
	require.Error(t, c.Ping())
}
