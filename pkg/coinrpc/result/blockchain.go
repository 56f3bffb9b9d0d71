package result

// BlockchainInfo is the answer to getblockchaininfo.
type BlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty,omitempty"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	ChainWork            string  `json:"chainwork"`
	SizeOnDisk           int64   `json:"size_on_disk"`
	Pruned               bool    `json:"pruned"`
	PruneHeight          int64   `json:"pruneheight,omitempty"`
	Warnings             string  `json:"warnings"`
}

// ChainTip is an element of the getchaintips answer describing one of the
// known chain branches.
type ChainTip struct {
	Height    int64  `json:"height"`
	Hash      string `json:"hash"`
	BranchLen int64  `json:"branchlen"`
	Status    string `json:"status"`
}

// BlockHeader is the verbose answer to getblockheader.
type BlockHeader struct {
	Hash              string  `json:"hash"`
	Confirmations     int64   `json:"confirmations"`
	Height            int64   `json:"height"`
	Version           int32   `json:"version"`
	VersionHex        string  `json:"versionHex"`
	MerkleRoot        string  `json:"merkleroot"`
	Time              int64   `json:"time"`
	MedianTime        int64   `json:"mediantime"`
	Nonce             uint32  `json:"nonce"`
	Bits              string  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
	ChainWork         string  `json:"chainwork"`
	NTx               int64   `json:"nTx"`
	PreviousBlockHash string  `json:"previousblockhash,omitempty"`
	NextBlockHash     string  `json:"nextblockhash,omitempty"`
}

// Block is the answer to getblock with verbosity 1, transactions are
// reported as txids only.
type Block struct {
	BlockHeader
	StrippedSize int64    `json:"strippedsize"`
	Size         int64    `json:"size"`
	Weight       int64    `json:"weight"`
	Flags        string   `json:"flags,omitempty"`
	ProofHash    string   `json:"proofhash,omitempty"`
	Mint         float64  `json:"mint,omitempty"`
	Signature    string   `json:"signature,omitempty"`
	Tx           []string `json:"tx"`
}

// BlockVerbose is the answer to getblock with verbosity 2 carrying fully
// decoded transactions.
type BlockVerbose struct {
	BlockHeader
	StrippedSize int64            `json:"strippedsize"`
	Size         int64            `json:"size"`
	Weight       int64            `json:"weight"`
	Flags        string           `json:"flags,omitempty"`
	ProofHash    string           `json:"proofhash,omitempty"`
	Mint         float64          `json:"mint,omitempty"`
	Signature    string           `json:"signature,omitempty"`
	Tx           []RawTransaction `json:"tx"`
}

// BlockStats is the answer to getblockstats. The daemon only reports the
// requested subset of fields, everything else stays zero-valued.
type BlockStats struct {
	AvgFee       int64   `json:"avgfee,omitempty"`
	AvgFeeRate   int64   `json:"avgfeerate,omitempty"`
	AvgTxSize    int64   `json:"avgtxsize,omitempty"`
	BlockHash    string  `json:"blockhash,omitempty"`
	Height       int64   `json:"height,omitempty"`
	Ins          int64   `json:"ins,omitempty"`
	MaxFee       int64   `json:"maxfee,omitempty"`
	MaxFeeRate   int64   `json:"maxfeerate,omitempty"`
	MaxTxSize    int64   `json:"maxtxsize,omitempty"`
	MedianFee    int64   `json:"medianfee,omitempty"`
	MedianTime   int64   `json:"mediantime,omitempty"`
	MedianTxSize int64   `json:"mediantxsize,omitempty"`
	MinFee       int64   `json:"minfee,omitempty"`
	MinFeeRate   int64   `json:"minfeerate,omitempty"`
	MinTxSize    int64   `json:"mintxsize,omitempty"`
	Outs         int64   `json:"outs,omitempty"`
	Subsidy      int64   `json:"subsidy,omitempty"`
	Time         int64   `json:"time,omitempty"`
	TotalOut     int64   `json:"total_out,omitempty"`
	TotalSize    int64   `json:"total_size,omitempty"`
	TotalFee     float64 `json:"totalfee,omitempty"`
	Txs          int64   `json:"txs,omitempty"`
	UTXOIncrease int64   `json:"utxo_increase,omitempty"`
	UTXOSizeInc  int64   `json:"utxo_size_inc,omitempty"`
}
