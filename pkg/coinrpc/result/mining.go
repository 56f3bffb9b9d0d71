package result

// MiningInfo is the answer to getmininginfo.
type MiningInfo struct {
	Blocks             int64      `json:"blocks"`
	CurrentBlockWeight int64      `json:"currentblockweight,omitempty"`
	CurrentBlockTx     int64      `json:"currentblocktx,omitempty"`
	Difficulty         Difficulty `json:"difficulty"`
	NetworkHashPS      float64    `json:"networkhashps"`
	PooledTx           int64      `json:"pooledtx"`
	Chain              string     `json:"chain"`
	Warnings           string     `json:"warnings"`
}

// Difficulty is the answer to getdifficulty. Peercoin-family chains report
// separate proof-of-work and proof-of-stake targets.
type Difficulty struct {
	ProofOfWork    float64 `json:"proof-of-work"`
	ProofOfStake   float64 `json:"proof-of-stake,omitempty"`
	SearchInterval int64   `json:"search-interval,omitempty"`
}
