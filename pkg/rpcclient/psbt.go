package rpcclient

import (
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc/result"
)

// AnalyzePSBT reports how far the signing flow of the given base64 partially
// signed transaction has progressed and what has to happen next.
func (c *Client) AnalyzePSBT(psbt string) (*result.AnalyzePSBT, error) {
	resp := new(result.AnalyzePSBT)
	if err := c.performRequest("analyzepsbt", []any{psbt}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CombinePSBT merges multiple base64 partially signed transactions of the
// same underlying transaction into one carrying all their signatures.
func (c *Client) CombinePSBT(psbts ...string) (string, error) {
	var resp string
	if err := c.performRequest("combinepsbt", toAnySlice(psbts), &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// DecodePSBT returns the JSON form of the given base64 partially signed
// transaction.
func (c *Client) DecodePSBT(psbt string) (*result.DecodePSBT, error) {
	resp := new(result.DecodePSBT)
	if err := c.performRequest("decodepsbt", []any{psbt}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FinalizePSBT turns a fully signed partially signed transaction into a
// network-serialized one, reported hex-encoded in the answer. Incomplete
// inputs keep the answer in PSBT form instead.
func (c *Client) FinalizePSBT(psbt string) (*result.FinalizePSBT, error) {
	resp := new(result.FinalizePSBT)
	if err := c.performRequest("finalizepsbt", []any{psbt, true}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FinalizePSBTNoExtract is a version of FinalizePSBT that keeps the answer
// in PSBT form even when all inputs are complete.
func (c *Client) FinalizePSBTNoExtract(psbt string) (*result.FinalizePSBT, error) {
	resp := new(result.FinalizePSBT)
	if err := c.performRequest("finalizepsbt", []any{psbt, false}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// JoinPSBTs joins multiple distinct partially signed transactions into one
// carrying the inputs and outputs of all of them. No input may be present
// in more than one of them.
func (c *Client) JoinPSBTs(psbts ...string) (string, error) {
	var resp string
	if err := c.performRequest("joinpsbts", toAnySlice(psbts), &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// UTXOUpdatePSBT fills the given partially signed transaction with UTXO
// data from the node (mempool, txindex and the UTXO set). Output
// descriptors, either plain strings or objects with a range, may be given
// to also fill input scripts.
func (c *Client) UTXOUpdatePSBT(psbt string, descriptors ...any) (string, error) {
	params := []any{psbt}
	if len(descriptors) != 0 {
		params = append(params, descriptors)
	}
	var resp string
	if err := c.performRequest("utxoupdatepsbt", params, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// WalletProcessPSBTOptions collects the optional trailing parameters of
// walletprocesspsbt. Nil pointer fields keep the daemon defaults documented
// on them.
type WalletProcessPSBTOptions struct {
	// Sign also signs the inputs the wallet can sign. Defaults to true.
	Sign *bool
	// SigHashType is used for inputs that don't specify one. Defaults to
	// "ALL".
	SigHashType string
	// BIP32Derivs includes BIP32 derivation paths for known pubkeys.
	// Defaults to true.
	BIP32Derivs *bool
}

// WalletProcessPSBT updates the given partially signed transaction with
// wallet-known input data and signs it. Nil opts means all defaults: sign
// with "ALL", derivation paths included.
func (c *Client) WalletProcessPSBT(psbt string, opts *WalletProcessPSBTOptions) (*result.WalletProcessPSBT, error) {
	var (
		sign        = true
		sigHashType = "ALL"
		bip32Derivs = true
	)
	if opts != nil {
		if opts.Sign != nil {
			sign = *opts.Sign
		}
		if opts.SigHashType != "" {
			sigHashType = opts.SigHashType
		}
		if opts.BIP32Derivs != nil {
			bip32Derivs = *opts.BIP32Derivs
		}
	}
	resp := new(result.WalletProcessPSBT)
	err := c.performRequest("walletprocesspsbt", []any{psbt, sign, sigHashType, bip32Derivs}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toAnySlice(ss []string) []any {
	res := make([]any, len(ss))
	for i := range ss {
		res[i] = ss[i]
	}
	return res
}
