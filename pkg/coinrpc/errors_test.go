package coinrpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := NewError(InvalidParameterCode, "Block height out of range", "")
	assert.Equal(t, "Block height out of range (-8)", err.Error())

	err = NewError(MiscErrorCode, "Loading wallet...", "wallet.dat")
	assert.Equal(t, "Loading wallet... (-1) - wallet.dat", err.Error())
}

func TestErrorIs(t *testing.T) {
	base := NewError(WalletUnlockNeededCode, "Error: Please enter the wallet passphrase with walletpassphrase first.", "")

	require.True(t, errors.Is(base, NewError(WalletUnlockNeededCode, "", "")))
	require.True(t, errors.Is(base, NewError(WalletUnlockNeededCode, base.Message, "")))
	require.False(t, errors.Is(base, NewError(WalletUnlockNeededCode, "another message", "")))
	require.False(t, errors.Is(base, NewError(WalletPassphraseIncorrect, "", "")))
	require.False(t, errors.Is(base, errors.New("unrelated")))
}

func TestErrorUnmarshal(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"jsonrpc":"2.0","result":null,"error":{"code":-28,"message":"Verifying blocks..."}}`), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, int64(InWarmupCode), resp.Error.Code)
	assert.Equal(t, "Verifying blocks...", resp.Error.Message)
	assert.Equal(t, "null", string(resp.Result))
}

func TestRequestMarshal(t *testing.T) {
	b, err := json.Marshal(Request{
		JSONRPC: JSONRPCVersion,
		Method:  "getblockhash",
		Params:  []any{442406},
		ID:      7,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"getblockhash","params":[442406],"id":7}`, string(b))
}
