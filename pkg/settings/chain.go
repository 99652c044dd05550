package settings

import (
	"fmt"
	"math/big"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/params"

	"layerswap/pkg/types"
)

// DefaultBaseFeeMultiplier applies to networks without a known override
const DefaultBaseFeeMultiplier = 1.2

// NetworkFeeSettings overrides fee estimation for a network
type NetworkFeeSettings struct {
	DefaultPriorityFee string // gwei
	BaseFeeMultiplier  float64
}

// KnownNetworkSettings is keyed by network internal name
var KnownNetworkSettings = map[string]NetworkFeeSettings{
	"POLYGON_MAINNET": {DefaultPriorityFee: "30"},
	"POLYGON_MUMBAI":  {DefaultPriorityFee: "30"},
	"LINEA_MAINNET":   {BaseFeeMultiplier: 1.5},
}

// NativeCurrency describes the gas currency of a chain
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Chain is an EVM chain descriptor built from a network
type Chain struct {
	ID                 *big.Int                  `json:"id"`
	Name               string                    `json:"name"`
	Network            string                    `json:"network"`
	NativeCurrency     NativeCurrency            `json:"native_currency"`
	RPCURLs            []string                  `json:"rpc_urls"`
	ExplorerURL        string                    `json:"explorer_url,omitempty"`
	Contracts          map[string]common.Address `json:"contracts,omitempty"`
	DefaultPriorityFee *big.Int                  `json:"default_priority_fee,omitempty"` // wei
	BaseFeeMultiplier  float64                   `json:"base_fee_multiplier"`
}

// ResolveChain builds the chain descriptor wallets need to talk to an EVM network
func ResolveChain(network types.Network) (*Chain, error) {
	chainID, ok := math.ParseBig256(network.ChainID)
	if !ok || network.ChainID == "" {
		return nil, fmt.Errorf("invalid chain id %q for network %s", network.ChainID, network.InternalName)
	}

	chain := &Chain{
		ID:                chainID,
		Name:              network.DisplayName,
		Network:           network.InternalName,
		RPCURLs:           make([]string, 0, len(network.Nodes)),
		Contracts:         map[string]common.Address{},
		BaseFeeMultiplier: DefaultBaseFeeMultiplier,
	}

	for _, c := range network.Currencies {
		if c.Asset == network.NativeCurrency {
			chain.NativeCurrency = NativeCurrency{Name: c.Name, Symbol: c.Asset, Decimals: c.Decimals}
			break
		}
	}

	for _, n := range network.Nodes {
		chain.RPCURLs = append(chain.RPCURLs, n.URL)
	}

	if network.TransactionExplorerTemplate != "" {
		u, err := url.Parse(network.TransactionExplorerTemplate)
		if err != nil {
			return nil, fmt.Errorf("invalid explorer template for network %s: %w", network.InternalName, err)
		}
		chain.ExplorerURL = u.Scheme + "://" + u.Host
	}

	if m := network.Metadata; m != nil {
		for name, addr := range map[string]string{
			"multicall3":           m.Multicall3,
			"ensRegistry":          m.ENSRegistry,
			"ensUniversalResolver": m.ENSUniversalResolver,
		} {
			if addr == "" {
				continue
			}
			if !common.IsHexAddress(addr) {
				return nil, fmt.Errorf("invalid %s address %q for network %s", name, addr, network.InternalName)
			}
			chain.Contracts[name] = common.HexToAddress(addr)
		}
	}

	if known, ok := KnownNetworkSettings[network.InternalName]; ok {
		if known.DefaultPriorityFee != "" {
			fee, err := gweiToWei(known.DefaultPriorityFee)
			if err != nil {
				return nil, fmt.Errorf("invalid priority fee for network %s: %w", network.InternalName, err)
			}
			chain.DefaultPriorityFee = fee
		}
		if known.BaseFeeMultiplier != 0 {
			chain.BaseFeeMultiplier = known.BaseFeeMultiplier
		}
	}

	return chain, nil
}

func gweiToWei(gwei string) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(gwei)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q", gwei)
	}
	r.Mul(r, new(big.Rat).SetInt64(params.GWei))
	return new(big.Int).Quo(r.Num(), r.Denom()), nil
}
