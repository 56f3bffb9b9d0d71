package result

import (
	"encoding/json"
)

// AnalyzePSBT is the answer to analyzepsbt describing how far the signing
// flow of a partially signed transaction has progressed.
type AnalyzePSBT struct {
	Inputs           []PSBTInputAnalysis `json:"inputs,omitempty"`
	EstimatedVSize   int64               `json:"estimated_vsize,omitempty"`
	EstimatedFeeRate float64             `json:"estimated_feerate,omitempty"`
	Fee              float64             `json:"fee,omitempty"`
	Next             string              `json:"next"`
	Error            string              `json:"error,omitempty"`
}

// PSBTInputAnalysis describes the signing state of a single PSBT input.
type PSBTInputAnalysis struct {
	HasUTXO bool   `json:"has_utxo"`
	IsFinal bool   `json:"is_final"`
	Next    string `json:"next,omitempty"`
	Missing struct {
		Pubkeys       []string `json:"pubkeys,omitempty"`
		Signatures    []string `json:"signatures,omitempty"`
		RedeemScript  string   `json:"redeemscript,omitempty"`
		WitnessScript string   `json:"witnessscript,omitempty"`
	} `json:"missing,omitempty"`
}

// DecodePSBT is the answer to decodepsbt. Input and output maps are kept as
// raw JSON, their layout varies a lot between daemon versions and the client
// doesn't interpret them.
type DecodePSBT struct {
	Tx      RawTransaction    `json:"tx"`
	Unknown map[string]string `json:"unknown,omitempty"`
	Inputs  []json.RawMessage `json:"inputs"`
	Outputs []json.RawMessage `json:"outputs"`
	Fee     float64           `json:"fee,omitempty"`
}

// FinalizePSBT is the answer to finalizepsbt. Hex is only set when the
// transaction is complete and extraction was requested.
type FinalizePSBT struct {
	PSBT     string `json:"psbt,omitempty"`
	Hex      string `json:"hex,omitempty"`
	Complete bool   `json:"complete"`
}

// WalletProcessPSBT is the answer to walletprocesspsbt.
type WalletProcessPSBT struct {
	PSBT     string `json:"psbt"`
	Complete bool   `json:"complete"`
}
