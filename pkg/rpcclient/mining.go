package rpcclient

import (
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc/result"
)

// GetMiningInfo returns mining-related daemon state.
func (c *Client) GetMiningInfo() (*result.MiningInfo, error) {
	resp := new(result.MiningInfo)
	if err := c.performRequest("getmininginfo", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetNetworkHashPS estimates the network hashes per second since the last
// difficulty change (the daemon's default window).
func (c *Client) GetNetworkHashPS() (float64, error) {
	return c.getNetworkHashPS(-1, nil)
}

// GetNetworkHashPSFor estimates the network hashes per second as an average
// over the last nblocks blocks, ending at the given height. Use -1 for
// nblocks to average since the last difficulty change, nil height means the
// chain tip.
func (c *Client) GetNetworkHashPSFor(nblocks int64, height *int64) (float64, error) {
	return c.getNetworkHashPS(nblocks, height)
}

func (c *Client) getNetworkHashPS(nblocks int64, height *int64) (float64, error) {
	var resp float64
	if err := c.performRequest("getnetworkhashps", []any{nblocks, height}, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}
