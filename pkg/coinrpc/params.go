package coinrpc

// TxInput is an element of the createrawtransaction inputs array referencing
// an existing UTXO.
type TxInput struct {
	Txid     string  `json:"txid"`
	Vout     uint32  `json:"vout"`
	Sequence *uint32 `json:"sequence,omitempty"`
}

// PrevTx describes a previous dependent transaction output for
// signrawtransactionwithwallet.
type PrevTx struct {
	Txid          string  `json:"txid"`
	Vout          uint32  `json:"vout"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	RedeemScript  string  `json:"redeemScript,omitempty"`
	WitnessScript string  `json:"witnessScript,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
}

// FundOptions is the options object of fundrawtransaction. Zero-valued
// fields are not sent, leaving the choice to the daemon.
type FundOptions struct {
	AddInputs              *bool    `json:"add_inputs,omitempty"`
	ChangeAddress          string   `json:"changeAddress,omitempty"`
	ChangePosition         *int     `json:"changePosition,omitempty"`
	ChangeType             string   `json:"change_type,omitempty"`
	IncludeWatching        *bool    `json:"includeWatching,omitempty"`
	LockUnspents           *bool    `json:"lockUnspents,omitempty"`
	FeeRate                *float64 `json:"feeRate,omitempty"`
	SubtractFeeFromOutputs []int    `json:"subtractFeeFromOutputs,omitempty"`
	Replaceable            *bool    `json:"replaceable,omitempty"`
	ConfTarget             *int     `json:"conf_target,omitempty"`
	EstimateMode           string   `json:"estimate_mode,omitempty"`
}

// UnspentQueryOptions is the query_options object of listunspent filtering
// outputs by value.
type UnspentQueryOptions struct {
	MinimumAmount    float64 `json:"minimumAmount,omitempty"`
	MaximumAmount    float64 `json:"maximumAmount,omitempty"`
	MaximumCount     int     `json:"maximumCount,omitempty"`
	MinimumSumAmount float64 `json:"minimumSumAmount,omitempty"`
}
