package rpcclient

import (
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc/result"
)

// GetBestBlockHash returns the hash of the tip of the longest chain.
func (c *Client) GetBestBlockHash() (string, error) {
	var resp string
	if err := c.performRequest("getbestblockhash", nil, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// GetBlockCount returns the height of the most-work fully-validated chain.
func (c *Client) GetBlockCount() (int64, error) {
	var resp int64
	if err := c.performRequest("getblockcount", nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// GetBlockHash returns the hash of the block at the given height in the
// best chain.
func (c *Client) GetBlockHash(height int64) (string, error) {
	var resp string
	if err := c.performRequest("getblockhash", []any{height}, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// GetBlock returns the block with the given hash with its transactions
// reported as txids (verbosity 1).
func (c *Client) GetBlock(blockHash string) (*result.Block, error) {
	resp := new(result.Block)
	if err := c.performRequest("getblock", []any{blockHash, 1}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockVerbose returns the block with the given hash with every
// transaction fully decoded (verbosity 2).
func (c *Client) GetBlockVerbose(blockHash string) (*result.BlockVerbose, error) {
	resp := new(result.BlockVerbose)
	if err := c.performRequest("getblock", []any{blockHash, 2}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockHex returns the serialized block with the given hash as a
// hex-encoded string (verbosity 0).
func (c *Client) GetBlockHex(blockHash string) (string, error) {
	var resp string
	if err := c.performRequest("getblock", []any{blockHash, 0}, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// GetBlockHeader returns the serialized header of the block with the given
// hash as a hex-encoded string.
func (c *Client) GetBlockHeader(blockHash string) (string, error) {
	var resp string
	if err := c.performRequest("getblockheader", []any{blockHash, false}, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// GetBlockHeaderVerbose returns the header of the block with the given hash
// with additional chain metadata.
func (c *Client) GetBlockHeaderVerbose(blockHash string) (*result.BlockHeader, error) {
	resp := new(result.BlockHeader)
	if err := c.performRequest("getblockheader", []any{blockHash, true}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockStatsByHash computes per-block statistics for the block with the
// given hash. Pass stat names to restrict the answer to those values only,
// all of them are computed otherwise.
func (c *Client) GetBlockStatsByHash(blockHash string, stats ...string) (*result.BlockStats, error) {
	return c.getBlockStats(blockHash, stats)
}

// GetBlockStatsByHeight computes per-block statistics for the block at the
// given height of the best chain. Pass stat names to restrict the answer to
// those values only, all of them are computed otherwise.
func (c *Client) GetBlockStatsByHeight(height int64, stats ...string) (*result.BlockStats, error) {
	return c.getBlockStats(height, stats)
}

func (c *Client) getBlockStats(param any, stats []string) (*result.BlockStats, error) {
	var filter any
	if len(stats) != 0 {
		filter = stats
	}
	resp := new(result.BlockStats)
	if err := c.performRequest("getblockstats", []any{param, filter}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockchainInfo returns the daemon's view of the state of the chain.
func (c *Client) GetBlockchainInfo() (*result.BlockchainInfo, error) {
	resp := new(result.BlockchainInfo)
	if err := c.performRequest("getblockchaininfo", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetChainTips returns all branch heads known to the daemon, the active one
// included.
func (c *Client) GetChainTips() ([]result.ChainTip, error) {
	var resp []result.ChainTip
	if err := c.performRequest("getchaintips", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetDifficulty returns the current proof-of-work and proof-of-stake
// difficulty.
func (c *Client) GetDifficulty() (*result.Difficulty, error) {
	resp := new(result.Difficulty)
	if err := c.performRequest("getdifficulty", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
