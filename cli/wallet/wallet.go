// Package wallet implements daemon wallet management commands.
package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/peercoin-tools/coinrpc/cli/input"
	"github.com/peercoin-tools/coinrpc/cli/options"
	"github.com/peercoin-tools/coinrpc/pkg/rpcclient"
	"github.com/urfave/cli"
)

// NewCommands returns 'wallet' and 'psbt' commands.
func NewCommands() []cli.Command {
	sendFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "to",
			Usage: "Destination address",
		},
		cli.Float64Flag{
			Name:  "amount",
			Usage: "Amount to send",
		},
		cli.StringFlag{
			Name:  "comment",
			Usage: "Comment stored locally with the transaction",
		},
		cli.StringFlag{
			Name:  "comment-to",
			Usage: "Comment on who the payment goes to, stored locally",
		},
		cli.BoolFlag{
			Name:  "keep-amount",
			Usage: "Pay the fee on top of the amount instead of subtracting it",
		},
		cli.BoolFlag{
			Name:  "avoid-reuse",
			Usage: "Avoid spending from dirty addresses",
		},
	}, options.RPC...)
	newAddressFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "label, l",
			Usage: "Label for the new address",
		},
		cli.StringFlag{
			Name:  "type, t",
			Usage: "Address type (legacy, p2sh-segwit or bech32)",
		},
	}, options.RPC...)
	createFlags := append([]cli.Flag{
		cli.BoolFlag{
			Name:  "watch-only",
			Usage: "Disable private keys, the wallet can only track addresses",
		},
		cli.BoolFlag{
			Name:  "blank",
			Usage: "Create a wallet without any keys or HD seed",
		},
	}, options.RPC...)
	unspentFlags := append([]cli.Flag{
		cli.Int64Flag{
			Name:  "min-conf",
			Value: 1,
			Usage: "Minimum number of confirmations",
		},
		cli.StringSliceFlag{
			Name:  "address, a",
			Usage: "Only list outputs paying to the given address (can be given multiple times)",
		},
	}, options.RPC...)
	receivedFlags := append([]cli.Flag{
		cli.Int64Flag{
			Name:  "min-conf",
			Value: 1,
			Usage: "Minimum number of confirmations",
		},
		cli.BoolFlag{
			Name:  "include-empty",
			Usage: "Include addresses that haven't received any payments",
		},
	}, options.RPC...)
	unlockFlags := append([]cli.Flag{
		cli.Int64Flag{
			Name:  "timeout, t",
			Value: 60,
			Usage: "Number of seconds to keep the wallet unlocked for",
		},
	}, options.RPC...)
	importFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "label, l",
			Usage: "Label for the imported key",
		},
		cli.BoolFlag{
			Name:  "no-rescan",
			Usage: "Skip rescanning the chain for transactions of the imported key",
		},
	}, options.RPC...)
	optimizeFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "address, a",
			Usage: "Address to collect optimized outputs on (a new one is used when not given)",
		},
		cli.Float64Flag{
			Name:  "amount",
			Usage: "Target size of a single output",
		},
		cli.StringFlag{
			Name:  "source",
			Usage: "Only optimize outputs of the given address",
		},
		cli.BoolFlag{
			Name:  "transmit",
			Usage: "Broadcast the resulting transaction instead of printing it",
		},
	}, options.RPC...)
	return []cli.Command{
		{
			Name:  "wallet",
			Usage: "Manage the daemon wallet",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "Create a new wallet",
					UsageText: "wallet create <name> [--watch-only] [--blank]",
					Action:    createWallet,
					Flags:     createFlags,
				},
				{
					Name:   "newaddress",
					Usage:  "Get a new receiving address",
					Action: newAddress,
					Flags:  newAddressFlags,
				},
				{
					Name:      "send",
					Usage:     "Send coins to an address",
					UsageText: "wallet send --to <address> --amount <amount>",
					Action:    sendToAddress,
					Flags:     sendFlags,
				},
				{
					Name:   "unspent",
					Usage:  "List unspent outputs",
					Action: listUnspent,
					Flags:  unspentFlags,
				},
				{
					Name:   "received",
					Usage:  "List balances by receiving address",
					Action: listReceived,
					Flags:  receivedFlags,
				},
				{
					Name:   "unlock",
					Usage:  "Unlock the wallet for a limited time",
					Action: unlockWallet,
					Flags:  unlockFlags,
				},
				{
					Name:      "importpubkey",
					Usage:     "Add a public key to the wallet in watch-only mode",
					UsageText: "wallet importpubkey <hex-pubkey> [--label <label>] [--no-rescan]",
					Action:    importPubKey,
					Flags:     importFlags,
				},
				{
					Name:   "optimize",
					Usage:  "Restructure wallet UTXOs into outputs of the given size",
					Action: optimizeUTXOSet,
					Flags:  optimizeFlags,
				},
			},
		},
		newPSBTCommand(),
	}
}

func getClient(ctx *cli.Context) (*rpcclient.Client, func(), cli.ExitCoder) {
	gctx, cancel := options.GetTimeoutContext(ctx)
	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		cancel()
		return nil, nil, exitErr
	}
	return c, func() {
		c.Close()
		cancel()
	}, nil
}

func createWallet(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("wallet name is missing", 1)
	}

	pass, err := input.ReadPassword("Enter the passphrase for the new wallet > ")
	if err != nil {
		return cli.NewExitError(fmt.Errorf("error reading passphrase: %w", err), 1)
	}
	confirmation, err := input.ReadPassword("Confirm the passphrase > ")
	if err != nil {
		return cli.NewExitError(fmt.Errorf("error reading passphrase: %w", err), 1)
	}
	if pass != confirmation {
		return cli.NewExitError("passphrases do not match", 1)
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	var opts *rpcclient.CreateWalletOptions
	if ctx.Bool("blank") {
		blank := true
		opts = &rpcclient.CreateWalletOptions{Blank: &blank}
	}
	res, err := c.CreateWallet(args[0], pass, ctx.Bool("watch-only"), opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Wallet %s created\n", res.Name)
	if res.Warning != "" {
		fmt.Fprintln(ctx.App.Writer, res.Warning)
	}
	return nil
}

func newAddress(ctx *cli.Context) error {
	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	var (
		addr string
		err  error
	)
	if addrType := ctx.String("type"); addrType != "" {
		addr, err = c.GetNewAddressOfType(ctx.String("label"), addrType)
	} else {
		addr, err = c.GetNewAddress(ctx.String("label"))
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, addr)
	return nil
}

func sendToAddress(ctx *cli.Context) error {
	address := ctx.String("to")
	if address == "" {
		return cli.NewExitError("destination address is missing, use --to", 1)
	}
	amount := ctx.Float64("amount")
	if amount <= 0 {
		return cli.NewExitError("positive amount is required, use --amount", 1)
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	opts := &rpcclient.SendToAddressOptions{
		Comment:   ctx.String("comment"),
		CommentTo: ctx.String("comment-to"),
	}
	if ctx.Bool("keep-amount") {
		subtract := false
		opts.SubtractFeeFromAmount = &subtract
	}
	if ctx.Bool("avoid-reuse") {
		avoid := true
		opts.AvoidReuse = &avoid
	}

	txid, err := c.SendToAddress(address, amount, opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, txid)
	return nil
}

func listUnspent(ctx *cli.Context) error {
	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	var opts rpcclient.ListUnspentOptions
	if ctx.IsSet("min-conf") {
		minConf := ctx.Int64("min-conf")
		opts.MinConf = &minConf
	}
	opts.Addresses = ctx.StringSlice("address")

	unspent, err := c.ListUnspent(&opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, unspent)
}

func listReceived(ctx *cli.Context) error {
	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	received, err := c.ListReceivedByAddress(ctx.Int64("min-conf"), ctx.Bool("include-empty"), false, nil)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, received)
}

func unlockWallet(ctx *cli.Context) error {
	pass, err := input.ReadPassword("Enter the wallet passphrase > ")
	if err != nil {
		return cli.NewExitError(fmt.Errorf("error reading passphrase: %w", err), 1)
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	err = c.WalletPassphrase(pass, ctx.Int64("timeout"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Wallet unlocked for %d seconds\n", ctx.Int64("timeout"))
	return nil
}

func importPubKey(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("public key is missing", 1)
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	var err error
	if ctx.Bool("no-rescan") {
		err = c.ImportPubKeyNoRescan(args[0], ctx.String("label"))
	} else {
		err = c.ImportPubKey(args[0], ctx.String("label"))
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func optimizeUTXOSet(ctx *cli.Context) error {
	amount := ctx.Float64("amount")
	if amount <= 0 {
		return cli.NewExitError("positive output amount is required, use --amount", 1)
	}

	c, done, exitErr := getClient(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer done()

	var source *string
	if s := ctx.String("source"); s != "" {
		source = &s
	}
	res, err := c.OptimizeUTXOSet(ctx.String("address"), amount, ctx.Bool("transmit"), source)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, res)
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
