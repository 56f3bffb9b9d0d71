package rpcclient

import (
	"github.com/peercoin-tools/coinrpc/pkg/coinrpc/result"
)

// GetConnectionCount returns the number of peer connections the daemon has.
func (c *Client) GetConnectionCount() (int64, error) {
	var resp int64
	if err := c.performRequest("getconnectioncount", nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// GetNetworkInfo returns the state of the daemon's P2P networking.
func (c *Client) GetNetworkInfo() (*result.NetworkInfo, error) {
	resp := new(result.NetworkInfo)
	if err := c.performRequest("getnetworkinfo", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetMempoolInfo returns the state of the daemon's transaction memory pool.
func (c *Client) GetMempoolInfo() (*result.MempoolInfo, error) {
	resp := new(result.MempoolInfo)
	if err := c.performRequest("getmempoolinfo", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
