package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layerswap/pkg/settings"
	"layerswap/pkg/types"
	"layerswap/pkg/wizard"
)

func TestDecideStep(t *testing.T) {
	result, err := decideStep(wizard.Input{Swap: &types.Swap{Status: types.SwapFailed, Type: types.SwapOffRamp}})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepFailed, result.Step)
	assert.Equal(t, wizard.RuleStatus, result.Rule)

	result, err = decideStep(wizard.Input{
		Swap:                     &types.Swap{Status: types.SwapCreated, Type: types.SwapOffRamp},
		NetworkFound:             true,
		DestinationDepositMethod: types.DepositMethodAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepWalletConnect, result.Step)
	assert.Equal(t, "offramp-address", result.Rule)

	result, err = decideStep(wizard.Input{Swap: &types.Swap{Status: types.SwapCreated, Type: types.SwapCrossChain}})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepProcessing, result.Step)
	assert.Equal(t, "automatic-deposit", result.Rule)

	_, err = decideStep(wizard.Input{Swap: &types.Swap{Status: types.SwapCreated, Type: types.SwapOffRamp}})
	assert.ErrorIs(t, err, wizard.ErrNoStep)
}

func TestFilterLayers(t *testing.T) {
	layers := []settings.Layer{
		{
			Network: types.Network{InternalName: "ETHEREUM_MAINNET"},
			Assets:  []types.NetworkCurrency{{Asset: "ETH"}, {Asset: "USDC"}},
		},
		{
			Network: types.Network{InternalName: "ARBITRUM_MAINNET"},
			Assets:  []types.NetworkCurrency{{Asset: "ETH"}},
		},
	}

	assert.Len(t, filterLayers(layers, "", ""), 2)

	byNetwork := filterLayers(layers, "arbitrum_mainnet", "")
	require.Len(t, byNetwork, 1)
	assert.Equal(t, "ARBITRUM_MAINNET", byNetwork[0].InternalName)

	byAsset := filterLayers(layers, "", "usdc")
	require.Len(t, byAsset, 1)
	assert.Equal(t, []types.NetworkCurrency{{Asset: "USDC"}}, byAsset[0].Assets)

	// the input is left untouched
	assert.Len(t, layers[0].Assets, 2)
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("", "coinbase")
	require.NoError(t, err)
	assert.Equal(t, "COINBASE", sel.Exchange)
	assert.Empty(t, sel.Network)

	sel, err = parseSelection("ethereum_mainnet:wstETH", "")
	require.NoError(t, err)
	assert.Equal(t, "ETHEREUM_MAINNET", sel.Network)
	assert.Equal(t, "wstETH", sel.Asset)

	_, err = parseSelection("nonsense", "")
	assert.Error(t, err)
}

func TestTxLabel(t *testing.T) {
	assert.Equal(t, "Input Tx:", txLabel(types.TransactionInput))
	assert.Equal(t, "Tx:", txLabel(""))
}

func TestValidateWatchInterval(t *testing.T) {
	assert.NoError(t, validateWatchInterval(1))
	assert.Error(t, validateWatchInterval(0))
	assert.Error(t, validateWatchInterval(-5))
}
