package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layerswap/pkg/types"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Route
		wantErr bool
	}{
		{"ETHEREUM_MAINNET:USDC", types.Route{Network: "ETHEREUM_MAINNET", Asset: "USDC"}, false},
		{"arbitrum_mainnet:ETH", types.Route{Network: "ARBITRUM_MAINNET", Asset: "ETH"}, false},
		{"ETHEREUM_MAINNET:wstETH", types.Route{Network: "ETHEREUM_MAINNET", Asset: "wstETH"}, false},
		{"  OPTIMISM_MAINNET:USDC.e ", types.Route{Network: "OPTIMISM_MAINNET", Asset: "USDC.e"}, false},
		{"ETHEREUM_MAINNET:ws-tETH", types.Route{}, true},
		{"ETHEREUM_MAINNET", types.Route{}, true},
		{"ETHEREUM MAINNET:USDC", types.Route{}, true},
		{":USDC", types.Route{}, true},
		{"ETHEREUM_MAINNET:", types.Route{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRoute(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoutes(t *testing.T) {
	routes, err := ParseRoutes([]string{"ETHEREUM_MAINNET:ETH", "base_mainnet:cbETH"})
	require.NoError(t, err)
	assert.Equal(t, []types.Route{
		{Network: "ETHEREUM_MAINNET", Asset: "ETH"},
		{Network: "BASE_MAINNET", Asset: "cbETH"},
	}, routes)

	_, err = ParseRoutes([]string{"ETHEREUM_MAINNET:ETH", "bad"})
	assert.Error(t, err)
}
