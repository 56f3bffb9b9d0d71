// Package query implements read-only chain state commands.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/peercoin-tools/coinrpc/cli/options"
	"github.com/urfave/cli"
)

// NewCommands returns 'query' command.
func NewCommands() []cli.Command {
	queryBlockFlags := append([]cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Output block transactions fully decoded",
		},
	}, options.RPC...)
	return []cli.Command{{
		Name:  "query",
		Usage: "Query daemon state",
		Subcommands: []cli.Command{
			{
				Name:   "height",
				Usage:  "Get node height and best block hash",
				Action: queryHeight,
				Flags:  options.RPC,
			},
			{
				Name:      "block",
				Usage:     "Get block by hash or height",
				UsageText: "query block <hash-or-height> [--verbose]",
				Action:    queryBlock,
				Flags:     queryBlockFlags,
			},
			{
				Name:      "header",
				Usage:     "Get block header by hash",
				UsageText: "query header <hash>",
				Action:    queryHeader,
				Flags:     options.RPC,
			},
			{
				Name:      "tx",
				Usage:     "Get transaction by txid",
				UsageText: "query tx <txid>",
				Action:    queryTx,
				Flags:     options.RPC,
			},
			{
				Name:   "chain",
				Usage:  "Get blockchain state summary",
				Action: queryChain,
				Flags:  options.RPC,
			},
			{
				Name:   "mempool",
				Usage:  "Get memory pool state",
				Action: queryMempool,
				Flags:  options.RPC,
			},
			{
				Name:   "difficulty",
				Usage:  "Get current proof-of-work and proof-of-stake difficulty",
				Action: queryDifficulty,
				Flags:  options.RPC,
			},
			{
				Name:      "hashrate",
				Usage:     "Get estimated network hashes per second",
				UsageText: "query hashrate [<nblocks>]",
				Action:    queryHashRate,
				Flags:     options.RPC,
			},
		},
	}}
}

func queryHeight(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	height, err := c.GetBlockCount()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	hash, err := c.GetBestBlockHash()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	buf := bytes.NewBuffer(nil)
	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte("Height:\t" + strconv.FormatInt(height, 10) + "\n"))
	_, _ = tw.Write([]byte("Best block:\t" + hash + "\n"))
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func queryBlock(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("block hash or height is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	hash := args[0]
	if height, err := strconv.ParseInt(hash, 10, 64); err == nil {
		hash, err = c.GetBlockHash(height)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	var (
		out any
		err error
	)
	if ctx.Bool("verbose") {
		out, err = c.GetBlockVerbose(hash)
	} else {
		out, err = c.GetBlock(hash)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, out)
}

func queryHeader(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("block hash is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	header, err := c.GetBlockHeaderVerbose(args[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, header)
}

func queryTx(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("transaction hash is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	tx, err := c.GetRawTransaction(args[0], nil)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, tx)
}

func queryChain(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	info, err := c.GetBlockchainInfo()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, info)
}

func queryMempool(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	info, err := c.GetMempoolInfo()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, info)
}

func queryDifficulty(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	diff, err := c.GetDifficulty()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	buf := bytes.NewBuffer(nil)
	tw := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	_, _ = tw.Write([]byte(fmt.Sprintf("Proof-of-work:\t%g\n", diff.ProofOfWork)))
	_, _ = tw.Write([]byte(fmt.Sprintf("Proof-of-stake:\t%g\n", diff.ProofOfStake)))
	_ = tw.Flush()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func queryHashRate(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	var (
		rate float64
		err  error
	)
	if args := ctx.Args(); len(args) != 0 {
		nblocks, convErr := strconv.ParseInt(args[0], 10, 64)
		if convErr != nil {
			return cli.NewExitError(fmt.Sprintf("invalid block count: %s", args[0]), 1)
		}
		rate, err = c.GetNetworkHashPSFor(nblocks, nil)
	} else {
		rate, err = c.GetNetworkHashPS()
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "%g\n", rate)
	return nil
}

func dumpJSON(ctx *cli.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
