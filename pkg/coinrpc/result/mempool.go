package result

// MempoolInfo is the answer to getmempoolinfo.
type MempoolInfo struct {
	Loaded        bool    `json:"loaded"`
	Size          int64   `json:"size"`
	Bytes         int64   `json:"bytes"`
	Usage         int64   `json:"usage"`
	MaxMempool    int64   `json:"maxmempool"`
	MempoolMinFee float64 `json:"mempoolminfee"`
	MinRelayTxFee float64 `json:"minrelaytxfee"`
}
