/*
Package coinrpc contains a set of types used for JSON-RPC communication with
Peercoin/Bitcoin-family daemons. It defines basic request/response envelope
types, the error type reported by daemons and a set of parameter objects used
for specific requests.
*/
package coinrpc

import (
	"encoding/json"
)

const (
	// JSONRPCVersion is the only JSON-RPC protocol version supported.
	JSONRPCVersion = "2.0"
)

type (
	// Request represents a JSON-RPC request sent to a daemon. Params is
	// always a positional array, Bitcoin-family daemons accept named
	// parameters too, but this client never uses them.
	Request struct {
		// JSONRPC is the protocol version, only valid when it contains JSONRPCVersion.
		JSONRPC string `json:"jsonrpc"`
		// Method is the daemon method being called.
		Method string `json:"method"`
		// Params is a set of method-specific positional parameters. They can
		// be anything as long as they can be marshaled to JSON correctly and
		// are positioned the way the daemon's RPC reference documents them.
		Params []any `json:"params"`
		// ID is an identifier associated with this request. JSON-RPC itself
		// allows strings to be used for it as well, but this client uses
		// numeric identifiers.
		ID uint64 `json:"id"`
	}

	// Header is a generic JSON-RPC 2.0 response header (ID and JSON-RPC version).
	Header struct {
		ID      json.RawMessage `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
	}

	// HeaderAndError adds an Error (that can be empty) to the Header, it's
	// used to construct type-specific responses.
	HeaderAndError struct {
		Header
		Error *Error `json:"error,omitempty"`
	}

	// Response represents a standard raw JSON-RPC 2.0
	// response: http://www.jsonrpc.org/specification#response_object. Daemons
	// always set exactly one of Result/Error, the client only checks Error.
	Response struct {
		HeaderAndError
		Result json.RawMessage `json:"result,omitempty"`
	}
)
