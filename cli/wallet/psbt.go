package wallet

import (
	"fmt"

	"github.com/peercoin-tools/coinrpc/cli/options"
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc/result"
	"github.com/peercoin-tools/coinrpc/pkg/rpcclient"
	"github.com/urfave/cli"
)

func newPSBTCommand() cli.Command {
	processFlags := append([]cli.Flag{
		cli.BoolFlag{
			Name:  "no-sign",
			Usage: "Only update the PSBT, don't sign it",
		},
		cli.StringFlag{
			Name:  "sighash",
			Usage: "Signature hash type (ALL, NONE, SINGLE, optionally with |ANYONECANPAY)",
		},
	}, options.RPC...)
	finalizeFlags := append([]cli.Flag{
		cli.BoolFlag{
			Name:  "no-extract",
			Usage: "Keep the result as a PSBT even when it's complete",
		},
	}, options.RPC...)
	return cli.Command{
		Name:  "psbt",
		Usage: "Work with partially signed transactions",
		Subcommands: []cli.Command{
			{
				Name:      "analyze",
				Usage:     "Report the signing progress of a PSBT",
				UsageText: "psbt analyze <base64>",
				Action:    analyzePSBT,
				Flags:     options.RPC,
			},
			{
				Name:      "decode",
				Usage:     "Decode a PSBT into JSON",
				UsageText: "psbt decode <base64>",
				Action:    decodePSBT,
				Flags:     options.RPC,
			},
			{
				Name:      "combine",
				Usage:     "Combine several PSBTs of the same transaction into one",
				UsageText: "psbt combine <base64> <base64> [<base64>...]",
				Action:    combinePSBT,
				Flags:     options.RPC,
			},
			{
				Name:      "join",
				Usage:     "Join several distinct PSBTs into one transaction",
				UsageText: "psbt join <base64> <base64> [<base64>...]",
				Action:    joinPSBTs,
				Flags:     options.RPC,
			},
			{
				Name:      "update",
				Usage:     "Update a PSBT with UTXO information known to the daemon",
				UsageText: "psbt update <base64> [<descriptor>...]",
				Action:    updatePSBT,
				Flags:     options.RPC,
			},
			{
				Name:      "process",
				Usage:     "Update and sign a PSBT with the wallet keys",
				UsageText: "psbt process <base64> [--no-sign] [--sighash <type>]",
				Action:    processPSBT,
				Flags:     processFlags,
			},
			{
				Name:      "finalize",
				Usage:     "Finalize a PSBT and extract the network transaction",
				UsageText: "psbt finalize <base64> [--no-extract]",
				Action:    finalizePSBT,
				Flags:     finalizeFlags,
			},
		},
	}
}

func firstArg(ctx *cli.Context) (string, error) {
	args := ctx.Args()
	if len(args) == 0 {
		return "", cli.NewExitError("base64 PSBT is missing", 1)
	}
	return args[0], nil
}

func analyzePSBT(ctx *cli.Context) error {
	psbt, err := firstArg(ctx)
	if err != nil {
		return err
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	res, err := c.AnalyzePSBT(psbt)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, res)
}

func decodePSBT(ctx *cli.Context) error {
	psbt, err := firstArg(ctx)
	if err != nil {
		return err
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	res, err := c.DecodePSBT(psbt)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, res)
}

func combinePSBT(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.NewExitError("at least two PSBTs are required", 1)
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	res, err := c.CombinePSBT(args...)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, res)
	return nil
}

func joinPSBTs(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.NewExitError("at least two PSBTs are required", 1)
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	res, err := c.JoinPSBTs(args...)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, res)
	return nil
}

func updatePSBT(ctx *cli.Context) error {
	psbt, err := firstArg(ctx)
	if err != nil {
		return err
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	args := ctx.Args()
	descriptors := make([]any, 0, len(args)-1)
	for _, d := range args[1:] {
		descriptors = append(descriptors, d)
	}
	res, err := c.UTXOUpdatePSBT(psbt, descriptors...)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, res)
	return nil
}

func processPSBT(ctx *cli.Context) error {
	psbt, err := firstArg(ctx)
	if err != nil {
		return err
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	opts := &rpcclient.WalletProcessPSBTOptions{
		SigHashType: ctx.String("sighash"),
	}
	if ctx.Bool("no-sign") {
		sign := false
		opts.Sign = &sign
	}
	res, err := c.WalletProcessPSBT(psbt, opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if res.Complete {
		fmt.Fprintln(ctx.App.Writer, "Fully signed, ready to finalize")
	}
	fmt.Fprintln(ctx.App.Writer, res.PSBT)
	return nil
}

func finalizePSBT(ctx *cli.Context) error {
	psbt, err := firstArg(ctx)
	if err != nil {
		return err
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	var res *result.FinalizePSBT
	if ctx.Bool("no-extract") {
		res, err = c.FinalizePSBTNoExtract(psbt)
	} else {
		res, err = c.FinalizePSBT(psbt)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if !res.Complete {
		fmt.Fprintln(ctx.App.Writer, "Not all inputs are signed yet")
	}
	if res.Hex != "" {
		fmt.Fprintln(ctx.App.Writer, res.Hex)
	}
	if res.PSBT != "" {
		fmt.Fprintln(ctx.App.Writer, res.PSBT)
	}
	return nil
}
