package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"layerswap/pkg/types"
)

func TestSourceParams(t *testing.T) {
	backendGroup := &types.AssetGroup{Name: "USDC", GroupedInBackend: true}

	q := SourceParams(Selection{}, nil)
	assert.Equal(t, "include_unmatched=true", q.Encode())

	q = SourceParams(Selection{Network: "ETHEREUM_MAINNET", Asset: "USDC"}, nil)
	assert.Equal(t, "destination_asset=USDC&destination_network=ETHEREUM_MAINNET&include_unmatched=true", q.Encode())

	q = SourceParams(Selection{Exchange: "COINBASE", Network: "ETHEREUM_MAINNET", Asset: "USDC"}, backendGroup)
	assert.Equal(t, "destination_asset_group=USDC&include_unmatched=true", q.Encode())

	// groups not grouped in backend fall back to network and asset
	q = SourceParams(Selection{Exchange: "COINBASE", Network: "ETHEREUM_MAINNET", Asset: "USDC"}, &types.AssetGroup{Name: "USDC"})
	assert.Equal(t, "ETHEREUM_MAINNET", q.Get("destination_network"))
	assert.Empty(t, q.Get("destination_asset_group"))
}

func TestDestinationParams(t *testing.T) {
	q := DestinationParams(Selection{Network: "ARBITRUM_MAINNET", Asset: "ETH"}, nil)
	assert.Equal(t, "include_unmatched=true&source_asset=ETH&source_network=ARBITRUM_MAINNET", q.Encode())

	q = DestinationParams(Selection{Exchange: "BINANCE"}, &types.AssetGroup{Name: "ETH", GroupedInBackend: true})
	assert.Equal(t, "include_unmatched=true&source_asset_group=ETH", q.Encode())

	// a network without an asset is not enough to filter
	q = DestinationParams(Selection{Network: "ARBITRUM_MAINNET"}, nil)
	assert.Equal(t, "include_unmatched=true", q.Encode())
}
