package result

// Unspent is an element of the listunspent answer describing a spendable
// output tracked by the wallet.
type Unspent struct {
	Txid          string  `json:"txid"`
	Vout          uint32  `json:"vout"`
	Address       string  `json:"address"`
	Label         string  `json:"label,omitempty"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
	RedeemScript  string  `json:"redeemScript,omitempty"`
	WitnessScript string  `json:"witnessScript,omitempty"`
	Spendable     bool    `json:"spendable"`
	Solvable      bool    `json:"solvable"`
	Reused        bool    `json:"reused,omitempty"`
	Desc          string  `json:"desc,omitempty"`
	Safe          bool    `json:"safe"`
}

// ReceivedByAddress is an element of the listreceivedbyaddress answer.
type ReceivedByAddress struct {
	InvolvesWatchOnly bool     `json:"involvesWatchonly,omitempty"`
	Address           string   `json:"address"`
	Amount            float64  `json:"amount"`
	Confirmations     int64    `json:"confirmations"`
	Label             string   `json:"label"`
	Txids             []string `json:"txids"`
}

// CreateWallet is the answer to createwallet.
type CreateWallet struct {
	Name    string `json:"name"`
	Warning string `json:"warning"`
}
