package coinrpc

import (
	"fmt"
)

// Error represents a JSON-RPC 2.0 error object carried in the "error" field
// of a daemon response. Code and Message come from the daemon verbatim, the
// client performs no translation and no retries.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// Standard JSON-RPC 2.0 protocol error codes.
const (
	ParseErrorCode     = -32700
	InvalidRequestCode = -32600
	MethodNotFoundCode = -32601
	InvalidParamsCode  = -32602
	InternalErrorCode  = -32603
)

// Application-level error codes reported by Bitcoin-family daemons, see
// rpcprotocol.h in the reference implementation.
const (
	MiscErrorCode               = -1
	TypeErrorCode               = -3
	InvalidAddressOrKeyCode     = -5
	OutOfMemoryCode             = -7
	InvalidParameterCode        = -8
	VerifyErrorCode             = -25
	VerifyRejectedCode          = -26
	VerifyAlreadyInChainCode    = -27
	InWarmupCode                = -28
	WalletErrorCode             = -4
	WalletInsufficientFunds     = -6
	WalletNotFoundCode          = -18
	WalletUnlockNeededCode      = -13
	WalletPassphraseIncorrect   = -14
	WalletAlreadyUnlockedCode   = -17
	ClientInInitialDownloadCode = -10
)

// NewError is an Error constructor that takes Error contents from its
// parameters.
func NewError(code int64, message string, data string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, e.Data)
}

// Is implements the errors.Is interface allowing errors to be matched by
// code only, Message and Data of the target are ignored when empty.
func (e *Error) Is(target error) bool {
	clTarget, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code != clTarget.Code {
		return false
	}
	if clTarget.Message != "" && e.Message != clTarget.Message {
		return false
	}
	return clTarget.Data == "" || e.Data == clTarget.Data
}
