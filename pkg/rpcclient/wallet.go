package rpcclient

import (
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc"
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc/result"
)

// SendToAddressOptions collects the optional trailing parameters of
// sendtoaddress. Nil pointer fields keep their daemon defaults documented
// on them.
type SendToAddressOptions struct {
	// Comment is stored in the wallet only, not in the transaction.
	Comment string
	// CommentTo names the recipient in the wallet only.
	CommentTo string
	// SubtractFeeFromAmount deducts the fee from the sent amount so that
	// the recipient receives less. Defaults to true.
	SubtractFeeFromAmount *bool
	// AvoidReuse avoids spending from dirty addresses, it's only effective
	// with the avoid_reuse wallet flag set. Defaults to false.
	AvoidReuse *bool
}

// SendToAddress sends the given amount of coins to the given address using
// wallet-selected inputs and returns the txid. Nil opts means all defaults:
// no comments, fee subtracted from the amount, no reuse avoidance.
func (c *Client) SendToAddress(address string, amount float64, opts *SendToAddressOptions) (string, error) {
	var (
		comment     any
		commentTo   any
		subtractFee = true
		avoidReuse  = false
	)
	if opts != nil {
		if opts.Comment != "" {
			comment = opts.Comment
		}
		if opts.CommentTo != "" {
			commentTo = opts.CommentTo
		}
		if opts.SubtractFeeFromAmount != nil {
			subtractFee = *opts.SubtractFeeFromAmount
		}
		if opts.AvoidReuse != nil {
			avoidReuse = *opts.AvoidReuse
		}
	}
	var resp string
	err := c.performRequest("sendtoaddress",
		[]any{address, amount, comment, commentTo, subtractFee, avoidReuse}, &resp)
	if err != nil {
		return "", err
	}
	return resp, nil
}

// GetNewAddress returns a fresh bech32 address for receiving payments,
// linked to the given label (pass "" for the default label).
func (c *Client) GetNewAddress(label string) (string, error) {
	return c.GetNewAddressOfType(label, "bech32")
}

// GetNewAddressOfType returns a fresh address of the given type ("legacy",
// "p2sh-segwit" or "bech32") linked to the given label.
func (c *Client) GetNewAddressOfType(label, addressType string) (string, error) {
	var lbl any
	if label != "" {
		lbl = label
	}
	var resp string
	if err := c.performRequest("getnewaddress", []any{lbl, addressType}, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// ImportPubKey adds the given hex-encoded public key to the wallet as
// watch-only, rescanning the chain for its transactions. Use
// ImportPubKeyNoRescan for wallets where the history doesn't matter.
func (c *Client) ImportPubKey(pubKey, label string) error {
	return c.performRequest("importpubkey", []any{pubKey, label, true}, nil)
}

// ImportPubKeyNoRescan adds the given hex-encoded public key to the wallet
// as watch-only without rescanning the chain.
func (c *Client) ImportPubKeyNoRescan(pubKey, label string) error {
	return c.performRequest("importpubkey", []any{pubKey, label, false}, nil)
}

// ListReceivedByAddress returns per-address totals of received payments with
// at least minConf confirmations. includeEmpty also lists addresses that
// haven't received anything, includeWatchOnly extends the answer to
// watch-only addresses and a non-nil addressFilter restricts it to a single
// address.
func (c *Client) ListReceivedByAddress(minConf int64, includeEmpty, includeWatchOnly bool, addressFilter *string) ([]result.ReceivedByAddress, error) {
	var resp []result.ReceivedByAddress
	err := c.performRequest("listreceivedbyaddress",
		[]any{minConf, includeEmpty, includeWatchOnly, addressFilter}, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListUnspentOptions collects the optional parameters of listunspent. Nil
// pointer and zero fields keep the daemon defaults documented on them.
type ListUnspentOptions struct {
	// MinConf is the minimum number of confirmations to include an output.
	// Defaults to 1.
	MinConf *int64
	// MaxConf is the maximum number of confirmations to include an output.
	// Defaults to 9999999.
	MaxConf *int64
	// Addresses restricts the answer to outputs paying these addresses.
	Addresses []string
	// IncludeUnsafe also lists outputs that are not safe to spend, such as
	// unconfirmed replaceable ones. Defaults to true.
	IncludeUnsafe *bool
	// QueryOptions filters outputs by value.
	QueryOptions *coinrpc.UnspentQueryOptions
}

// ListUnspent returns the wallet's spendable outputs. Nil opts means all
// defaults: 1 to 9999999 confirmations, any address, unsafe outputs
// included.
func (c *Client) ListUnspent(opts *ListUnspentOptions) ([]result.Unspent, error) {
	var (
		minConf       int64 = 1
		maxConf       int64 = 9999999
		addresses           = []string{}
		includeUnsafe       = true
		queryOptions  any   = struct{}{}
	)
	if opts != nil {
		if opts.MinConf != nil {
			minConf = *opts.MinConf
		}
		if opts.MaxConf != nil {
			maxConf = *opts.MaxConf
		}
		if opts.Addresses != nil {
			addresses = opts.Addresses
		}
		if opts.IncludeUnsafe != nil {
			includeUnsafe = *opts.IncludeUnsafe
		}
		if opts.QueryOptions != nil {
			queryOptions = opts.QueryOptions
		}
	}
	var resp []result.Unspent
	err := c.performRequest("listunspent",
		[]any{minConf, maxConf, addresses, includeUnsafe, queryOptions}, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateWalletOptions collects the optional trailing parameters of
// createwallet. Nil pointer fields keep the daemon defaults documented on
// them.
type CreateWalletOptions struct {
	// Blank creates a wallet with no keys or HD seed. Defaults to false.
	Blank *bool
	// AvoidReuse tracks coin reuse for privacy. Defaults to false.
	AvoidReuse *bool
	// Descriptors creates a native descriptor wallet. Defaults to false.
	Descriptors *bool
	// LoadOnStartup adds the wallet to the daemon's startup list. Defaults
	// to true.
	LoadOnStartup *bool
}

// CreateWallet creates a new wallet encrypted with the given passphrase.
// disablePrivateKeys makes the wallet watch-only. Nil opts keeps all daemon
// defaults: a regular non-blank wallet loaded on startup.
func (c *Client) CreateWallet(name, passphrase string, disablePrivateKeys bool, opts *CreateWalletOptions) (*result.CreateWallet, error) {
	var (
		blank         = false
		avoidReuse    = false
		descriptors   = false
		loadOnStartup = true
	)
	if opts != nil {
		if opts.Blank != nil {
			blank = *opts.Blank
		}
		if opts.AvoidReuse != nil {
			avoidReuse = *opts.AvoidReuse
		}
		if opts.Descriptors != nil {
			descriptors = *opts.Descriptors
		}
		if opts.LoadOnStartup != nil {
			loadOnStartup = *opts.LoadOnStartup
		}
	}
	resp := new(result.CreateWallet)
	err := c.performRequest("createwallet",
		[]any{name, disablePrivateKeys, blank, passphrase, avoidReuse, descriptors, loadOnStartup}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// WalletPassphrase decrypts the wallet with the given passphrase for
// timeout seconds, required before any signing operation on encrypted
// wallets.
func (c *Client) WalletPassphrase(passphrase string, timeout int64) error {
	return c.performRequest("walletpassphrase", []any{passphrase, timeout}, nil)
}

// OptimizeUTXOSet rebuilds the wallet's UTXO set into outputs of the given
// amount to maximize the proof-of-stake yield, resetting accumulated
// coinage. New outputs are assigned to address (pass "" to keep the input
// addresses), a non-nil sourceAddress restricts which coins are split. The
// generated transaction is returned hex-encoded and is only broadcast when
// transmit is set. Requires the wallet to be unlocked.
func (c *Client) OptimizeUTXOSet(address string, amount float64, transmit bool, sourceAddress *string) (string, error) {
	var addr any
	if address != "" {
		addr = address
	}
	var resp string
	err := c.performRequest("optimizeutxoset", []any{addr, amount, transmit, sourceAddress}, &resp)
	if err != nil {
		return "", err
	}
	return resp, nil
}
