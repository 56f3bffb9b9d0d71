package result

// RawTransaction is the verbose answer to getrawtransaction and the decoded
// transaction carried by verbosity-2 blocks.
type RawTransaction struct {
	InActiveChain bool    `json:"in_active_chain,omitempty"`
	Hex           string  `json:"hex,omitempty"`
	Txid          string  `json:"txid"`
	Hash          string  `json:"hash"`
	Size          int64   `json:"size"`
	VSize         int64   `json:"vsize"`
	Weight        int64   `json:"weight"`
	Version       int32   `json:"version"`
	Time          int64   `json:"time,omitempty"`
	LockTime      uint32  `json:"locktime"`
	Vin           []Vin   `json:"vin"`
	Vout          []Vout  `json:"vout"`
	BlockHash     string  `json:"blockhash,omitempty"`
	Confirmations int64   `json:"confirmations,omitempty"`
	BlockTime     int64   `json:"blocktime,omitempty"`
}

// Vin is a transaction input, either a coinbase one (Coinbase set) or a
// reference to a previous output.
type Vin struct {
	Coinbase    string     `json:"coinbase,omitempty"`
	Txid        string     `json:"txid,omitempty"`
	Vout        uint32     `json:"vout,omitempty"`
	ScriptSig   *ScriptSig `json:"scriptSig,omitempty"`
	TxinWitness []string   `json:"txinwitness,omitempty"`
	Sequence    uint32     `json:"sequence"`
}

// Vout is a transaction output.
type Vout struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// ScriptSig is an input unlocking script.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// ScriptPubKey is an output locking script.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   int64    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}

// FundResult is the answer to fundrawtransaction.
type FundResult struct {
	Hex       string  `json:"hex"`
	Fee       float64 `json:"fee"`
	ChangePos int     `json:"changepos"`
}

// SignResult is the answer to signrawtransactionwithwallet.
type SignResult struct {
	Hex      string      `json:"hex"`
	Complete bool        `json:"complete"`
	Errors   []SignError `json:"errors,omitempty"`
}

// SignError describes a script verification failure for one of the inputs
// being signed.
type SignError struct {
	Txid      string `json:"txid"`
	Vout      uint32 `json:"vout"`
	ScriptSig string `json:"scriptSig"`
	Sequence  uint32 `json:"sequence"`
	Error     string `json:"error"`
}
