/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"errors"
	"time"

	"github.com/peercoin-tools/coinrpc/cli/input"
	"github.com/peercoin-tools/coinrpc/pkg/config"
	"github.com/peercoin-tools/coinrpc/pkg/rpcclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeout is the default timeout used for RPC requests.
const DefaultTimeout = 10 * time.Second

// RPCEndpointFlag is a long flag name for an RPC endpoint. It can be used to
// check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// RPC is a set of flags used for RPC connections (endpoint, credentials and
// timeout).
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC daemon address (overrides the one from --config-file)",
	},
	cli.StringFlag{
		Name:  "rpc-user, u",
		Usage: "user name for HTTP basic authentication",
	},
	cli.StringFlag{
		Name:  "rpc-password",
		Usage: "password for HTTP basic authentication (prompted for when --rpc-user is given without it)",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
	cli.StringFlag{
		Name:  "config-file, c",
		Usage: "path to the YAML connection configuration file",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: "enable debug logging of performed RPC calls",
	},
}

var errNoEndpoint = errors.New("no RPC endpoint specified, use option '--" + RPCEndpointFlag + "' or '-r' or a config file")

// GetTimeoutContext returns a context.Context with the default or a user-set timeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetRPCClient returns an RPC client instance for the given Context. The
// connection parameters are taken from the config file when one is given,
// command line flags override it field by field.
func GetRPCClient(gctx context.Context, ctx *cli.Context) (*rpcclient.Client, cli.ExitCoder) {
	var (
		cfg config.Config
		err error
	)
	if path := ctx.String("config-file"); len(path) != 0 {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, cli.NewExitError(err, 1)
		}
	}
	if endpoint := ctx.String(RPCEndpointFlag); len(endpoint) != 0 {
		cfg.Endpoint = endpoint
	}
	if len(cfg.Endpoint) == 0 {
		return nil, cli.NewExitError(errNoEndpoint, 1)
	}
	if user := ctx.String("rpc-user"); len(user) != 0 {
		cfg.Username = user
		cfg.Password = ctx.String("rpc-password")
	}
	if len(cfg.Username) != 0 && len(cfg.Password) == 0 {
		cfg.Password, err = input.ReadPassword("Enter the RPC password > ")
		if err != nil {
			return nil, cli.NewExitError(err, 1)
		}
	}

	var logger *zap.Logger
	if ctx.Bool("debug") {
		logger, err = HandleLoggingParams(true)
		if err != nil {
			return nil, cli.NewExitError(err, 1)
		}
	}

	c, err := rpcclient.New(gctx, cfg.Endpoint, cfg.Username, cfg.Password, rpcclient.Options{
		DialTimeout:    cfg.DialTimeout,
		RequestTimeout: cfg.RequestTimeout,
		Headers:        cfg.Headers,
		Logger:         logger,
	})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// HandleLoggingParams builds a console logger.
// If a user selected debug level -- function enables it.
func HandleLoggingParams(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	return cc.Build()
}
