package result

// NetworkInfo is the answer to getnetworkinfo.
type NetworkInfo struct {
	Version            int64          `json:"version"`
	SubVersion         string         `json:"subversion"`
	ProtocolVersion    int64          `json:"protocolversion"`
	LocalServices      string         `json:"localservices"`
	LocalServicesNames []string       `json:"localservicesnames,omitempty"`
	LocalRelay         bool           `json:"localrelay"`
	TimeOffset         int64          `json:"timeoffset"`
	Connections        int64          `json:"connections"`
	ConnectionsIn      int64          `json:"connections_in,omitempty"`
	ConnectionsOut     int64          `json:"connections_out,omitempty"`
	NetworkActive      bool           `json:"networkactive"`
	Networks           []Network      `json:"networks"`
	RelayFee           float64        `json:"relayfee"`
	IncrementalFee     float64        `json:"incrementalfee,omitempty"`
	LocalAddresses     []LocalAddress `json:"localaddresses"`
	Warnings           string         `json:"warnings"`
}

// Network describes the state of one of the daemon's reachable networks
// (ipv4/ipv6/onion/i2p).
type Network struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// LocalAddress is a local address the daemon listens on.
type LocalAddress struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Score   int64  `json:"score"`
}
