package rpcclient

import (
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc"
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc/result"
)

// GetRawTransaction returns the decoded transaction with the given txid. For
// transactions no longer in the mempool the hash of the block containing
// them must be given via blockHash (nil otherwise), transaction indexing
// permitting.
func (c *Client) GetRawTransaction(txid string, blockHash *string) (*result.RawTransaction, error) {
	resp := new(result.RawTransaction)
	if err := c.performRequest("getrawtransaction", []any{txid, true, blockHash}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetRawTransactionHex returns the serialized transaction with the given
// txid as a hex-encoded string. blockHash follows the GetRawTransaction
// contract.
func (c *Client) GetRawTransactionHex(txid string, blockHash *string) (string, error) {
	var resp string
	if err := c.performRequest("getrawtransaction", []any{txid, false, blockHash}, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// CreateRawTransaction builds an unsigned serialized transaction spending
// the given inputs. Each output is a single-key object mapping an address to
// an amount (or "data" to a hex payload). A non-zero locktime also
// locktime-activates the inputs.
func (c *Client) CreateRawTransaction(inputs []coinrpc.TxInput, outputs []map[string]any, locktime int64) (string, error) {
	if inputs == nil {
		inputs = []coinrpc.TxInput{}
	}
	if outputs == nil {
		outputs = []map[string]any{}
	}
	var resp string
	if err := c.performRequest("createrawtransaction", []any{inputs, outputs, locktime}, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// FundRawTransaction adds inputs to the given serialized transaction until
// it has enough value to meet its outputs plus a fee, adding a change output
// when needed. Options may be nil to accept the daemon defaults, isWitness
// may be nil to let the daemon guess the serialization format.
func (c *Client) FundRawTransaction(hexString string, opts *coinrpc.FundOptions, isWitness *bool) (*result.FundResult, error) {
	var options any = struct{}{}
	if opts != nil {
		options = opts
	}
	resp := new(result.FundResult)
	if err := c.performRequest("fundrawtransaction", []any{hexString, options, isWitness}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SendRawTransaction submits the given serialized transaction to the local
// node and network and returns its txid.
func (c *Client) SendRawTransaction(hexString string) (string, error) {
	var resp string
	if err := c.performRequest("sendrawtransaction", []any{hexString}, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// SignRawTransactionWithWallet signs the given serialized transaction with
// keys held by the wallet. prevTxs may be nil unless some of the spent
// outputs are unknown to the node, an empty sigHashType means "ALL".
func (c *Client) SignRawTransactionWithWallet(hexString string, prevTxs []coinrpc.PrevTx, sigHashType string) (*result.SignResult, error) {
	if prevTxs == nil {
		prevTxs = []coinrpc.PrevTx{}
	}
	if sigHashType == "" {
		sigHashType = "ALL"
	}
	resp := new(result.SignResult)
	if err := c.performRequest("signrawtransactionwithwallet", []any{hexString, prevTxs, sigHashType}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
