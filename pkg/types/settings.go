package types

// NetworkStatus marks whether a network is offered
type NetworkStatus string

const (
	NetworkActive   NetworkStatus = "active"
	NetworkInactive NetworkStatus = "inactive"
)

// NetworkType identifies the chain family of a network
type NetworkType string

const (
	NetworkTypeEVM      NetworkType = "evm"
	NetworkTypeStarknet NetworkType = "starknet"
	NetworkTypeStarkEx  NetworkType = "starkex"
	NetworkTypeSolana   NetworkType = "solana"
	NetworkTypeZkSync   NetworkType = "zksynclite"
)

// DepositMethodAddress means funds are sent to a generated deposit address
const DepositMethodAddress = "address"

// DepositFlow defines how an exchange receives funds
type DepositFlow string

const (
	DepositFlowManual   DepositFlow = "manual"
	DepositFlowExternal DepositFlow = "external"
)

// Route is a permitted (network, asset) combination
type Route struct {
	Network string `json:"network"`
	Asset   string `json:"asset"`
}

// NetworkCurrency is a currency as offered on a specific network
type NetworkCurrency struct {
	ID              int    `json:"id"`
	Asset           string `json:"asset"`
	Name            string `json:"name,omitempty"`
	Decimals        int    `json:"decimals"`
	ContractAddress string `json:"contract_address,omitempty"`

	// Derived from the route lists, never sent by the API
	AvailableInSource      bool `json:"available_in_source"`
	AvailableInDestination bool `json:"available_in_destination"`
}

// NetworkNode is an RPC endpoint of a network
type NetworkNode struct {
	URL string `json:"url"`
}

// NetworkMetadata holds well-known contract addresses of EVM networks
type NetworkMetadata struct {
	Multicall3           string `json:"multicall3,omitempty"`
	ENSRegistry          string `json:"ensRegistry,omitempty"`
	ENSUniversalResolver string `json:"ensUniversalResolver,omitempty"`
}

// Network is a blockchain network as returned by the settings endpoint
type Network struct {
	InternalName                string            `json:"internal_name"`
	DisplayName                 string            `json:"display_name"`
	Currencies                  []NetworkCurrency `json:"currencies"`
	DepositMethod               string            `json:"deposit_method"`
	Status                      NetworkStatus     `json:"status"`
	ChainID                     string            `json:"chain_id,omitempty"`
	Type                        NetworkType       `json:"type,omitempty"`
	NativeCurrency              string            `json:"native_currency,omitempty"`
	TransactionExplorerTemplate string            `json:"transaction_explorer_template,omitempty"`
	Nodes                       []NetworkNode     `json:"nodes,omitempty"`
	Metadata                    *NetworkMetadata  `json:"metadata,omitempty"`
}

// ExchangeCurrency is a currency as offered on an exchange
type ExchangeCurrency struct {
	ID    int    `json:"id"`
	Asset string `json:"asset"`
}

// Exchange is a centralized exchange as returned by the settings endpoint
type Exchange struct {
	InternalName string             `json:"internal_name"`
	DisplayName  string             `json:"display_name"`
	DepositFlow  DepositFlow        `json:"deposit_flow"`
	Currencies   []ExchangeCurrency `json:"currencies"`
	Status       string             `json:"status"`
}

// Partner is an integrating wallet or dApp
type Partner struct {
	InternalName string `json:"internal_name"`
	DisplayName  string `json:"display_name"`
	LogoURL      string `json:"logo_url"`
	IsWallet     bool   `json:"is_wallet"`
}

// AssetGroup clusters (network, asset) values into one selectable currency
type AssetGroup struct {
	Name             string  `json:"name"`
	Values           []Route `json:"values"`
	GroupedInBackend bool    `json:"grouped_in_backend"`
}

// Discovery holds service endpoints announced by the backend
type Discovery struct {
	IdentityURL string `json:"identity_url"`
}

// Settings is the raw payload of the settings endpoint
type Settings struct {
	Networks          []Network    `json:"networks"`
	Exchanges         []Exchange   `json:"exchanges"`
	SourceRoutes      []Route      `json:"source_routes"`
	DestinationRoutes []Route      `json:"destination_routes"`
	AssetGroups       []AssetGroup `json:"asset_groups,omitempty"`
	Discovery         Discovery    `json:"discovery"`
}

// APIError is the error object of an API response envelope
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope every LayerSwap endpoint returns
type APIResponse[T any] struct {
	Data  T         `json:"data"`
	Error *APIError `json:"error,omitempty"`
}

// GetError returns the error object of the envelope, if any
func (r *APIResponse[T]) GetError() *APIError {
	return r.Error
}
