package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outcomelabs/clobcore/pkg/config"
	"github.com/outcomelabs/clobcore/pkg/types"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Side
		wantErr bool
	}{
		{name: "buy-lower", input: "buy", want: types.Buy},
		{name: "buy-upper", input: "BUY", want: types.Buy},
		{name: "sell-lower", input: "sell", want: types.Sell},
		{name: "sell-mixed", input: "Sell", want: types.Sell},
		{name: "unknown", input: "hold", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSide(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOrderType(t *testing.T) {
	cfg := &config.Config{OrderType: "GTC"}

	// Flag takes precedence over config.
	orderTypeFlag = "fok"
	got, err := resolveOrderType(cfg)
	require.NoError(t, err)
	assert.Equal(t, types.FOK, got)

	// Empty flag falls back to config.
	orderTypeFlag = ""
	got, err = resolveOrderType(cfg)
	require.NoError(t, err)
	assert.Equal(t, types.GTC, got)

	orderTypeFlag = "IOC"
	_, err = resolveOrderType(cfg)
	assert.Error(t, err)
	orderTypeFlag = ""
}

func TestWalletFromConfig(t *testing.T) {
	cfg := &config.Config{
		PrivateKey: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
	}

	wallet, err := walletFromConfig(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, wallet.Address().Hex())

	cfg.PrivateKey = ""
	_, err = walletFromConfig(cfg)
	assert.Error(t, err)
}
