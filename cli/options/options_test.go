package options

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestGetTimeoutContext(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		start := time.Now()
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		actualCtx, cancel := GetTimeoutContext(ctx)
		defer cancel()
		end := time.Now()
		dl, _ := actualCtx.Deadline()
		require.True(t, start.Before(dl) && dl.Before(end.Add(DefaultTimeout)))
	})

	t.Run("set", func(t *testing.T) {
		start := time.Now()
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.Duration("timeout", time.Duration(20), "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		actualCtx, cancel := GetTimeoutContext(ctx)
		defer cancel()
		end := time.Now()
		dl, _ := actualCtx.Deadline()
		require.True(t, start.Before(dl) && dl.Before(end.Add(time.Nanosecond*20)))
	})
}

func TestGetRPCClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"jsonrpc":"2.0","result":1,"error":null}`))
	}))
	t.Cleanup(srv.Close)

	t.Run("no endpoint", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		gctx, cancel := GetTimeoutContext(ctx)
		defer cancel()
		_, err := GetRPCClient(gctx, ctx)
		require.Error(t, err)
		require.Equal(t, 1, err.ExitCode())
	})

	t.Run("success", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String(RPCEndpointFlag, srv.URL, "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		gctx, cancel := GetTimeoutContext(ctx)
		defer cancel()
		c, err := GetRPCClient(gctx, ctx)
		require.Nil(t, err)
		t.Cleanup(c.Close)
		require.Equal(t, srv.URL, c.Endpoint())
	})
}
