package parser

import (
	"fmt"
	"regexp"
	"strings"

	"layerswap/pkg/types"
)

// Pattern: <NETWORK_INTERNAL_NAME>:<ASSET>
// Matches: "ETHEREUM_MAINNET:USDC", "arbitrum_mainnet:ETH", "ETHEREUM_MAINNET:wstETH", "STARKNET_MAINNET:USDC.e"
var routePattern = regexp.MustCompile(`(?i)^([A-Z0-9_]+):([A-Z0-9.]+)$`)

// ParseRoute parses a route argument such as "ETHEREUM_MAINNET:USDC".
// Network names are upper-cased. Assets are matched exactly by the API, so they keep their case.
func ParseRoute(arg string) (types.Route, error) {
	arg = strings.TrimSpace(arg)
	network, asset, ok := strings.Cut(arg, ":")
	if !ok {
		return types.Route{}, fmt.Errorf("invalid route %q. Expected: '<network>:<asset>' (e.g., 'ETHEREUM_MAINNET:USDC')", arg)
	}

	if !routePattern.MatchString(arg) {
		return types.Route{}, fmt.Errorf("invalid route %q. Expected: '<network>:<asset>' (e.g., 'ETHEREUM_MAINNET:USDC')", arg)
	}

	return types.Route{
		Network: strings.ToUpper(network),
		Asset:   asset,
	}, nil
}

// ParseRoutes parses every argument, stopping at the first invalid one
func ParseRoutes(args []string) ([]types.Route, error) {
	routes := make([]types.Route, 0, len(args))
	for _, a := range args {
		r, err := ParseRoute(a)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}
