package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/peercoin-tools/coinrpc/cli/query"
	"github.com/peercoin-tools/coinrpc/cli/wallet"
	"github.com/urfave/cli"
)

// Version is the version of the tool, set at build time.
var Version string

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "coinrpc\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a coinrpc instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "coinrpc"
	ctl.Version = Version
	ctl.Usage = "CLI for Peercoin/Bitcoin-family daemon JSON-RPC interfaces"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, query.NewCommands()...)
	ctl.Commands = append(ctl.Commands, wallet.NewCommands()...)
	return ctl
}
