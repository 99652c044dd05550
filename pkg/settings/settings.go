package settings

import (
	"strings"

	"layerswap/config"
	"layerswap/pkg/types"
)

// Layer is a network enriched with its image and per-currency availability
type Layer struct {
	types.Network
	ImgURL string                  `json:"img_url"`
	Assets []types.NetworkCurrency `json:"assets"`
}

// ResolvedExchange is an exchange enriched with its image
type ResolvedExchange struct {
	types.Exchange
	ImgURL string `json:"img_url"`
}

// AppSettings is the resolved view of the backend settings
type AppSettings struct {
	Layers            []Layer            `json:"layers"`
	Exchanges         []ResolvedExchange `json:"exchanges"`
	SourceRoutes      []types.Route      `json:"source_routes"`
	DestinationRoutes []types.Route      `json:"destination_routes"`
	AssetGroups       []types.AssetGroup `json:"asset_groups"`

	resourceURL string
}

// NewAppSettings resolves raw settings against the configured resource storage URL
func NewAppSettings(cfg *config.Config, raw types.Settings) (*AppSettings, error) {
	if cfg == nil || cfg.ResourceStorageURL == "" {
		return nil, config.ErrMissingResourceStorageURL
	}
	base := cfg.ResourceStorageURL

	return &AppSettings{
		Layers:            ResolveLayers(base, raw.Networks, raw.SourceRoutes, raw.DestinationRoutes),
		Exchanges:         ResolveExchanges(base, raw.Exchanges),
		SourceRoutes:      raw.SourceRoutes,
		DestinationRoutes: raw.DestinationRoutes,
		AssetGroups:       raw.AssetGroups,
		resourceURL:       base,
	}, nil
}

// ResourceURL returns the base URL images are resolved against
func (s *AppSettings) ResourceURL() string {
	return s.resourceURL
}

// ResolveLayers enriches networks in input order
func ResolveLayers(base string, networks []types.Network, sourceRoutes, destinationRoutes []types.Route) []Layer {
	layers := make([]Layer, 0, len(networks))
	for _, n := range networks {
		layers = append(layers, Layer{
			Network: n,
			ImgURL:  networkImageURL(base, n.InternalName),
			Assets:  ResolveNetworkAssets(n, sourceRoutes, destinationRoutes),
		})
	}
	return layers
}

// ResolveExchanges enriches exchanges in input order
func ResolveExchanges(base string, exchanges []types.Exchange) []ResolvedExchange {
	resolved := make([]ResolvedExchange, 0, len(exchanges))
	for _, e := range exchanges {
		resolved = append(resolved, ResolvedExchange{
			Exchange: e,
			ImgURL:   networkImageURL(base, e.InternalName),
		})
	}
	return resolved
}

// ResolveNetworkAssets computes source and destination availability for every currency of network
func ResolveNetworkAssets(network types.Network, sourceRoutes, destinationRoutes []types.Route) []types.NetworkCurrency {
	assets := make([]types.NetworkCurrency, 0, len(network.Currencies))
	for _, c := range network.Currencies {
		c.AvailableInSource = HasRoute(sourceRoutes, network.InternalName, c.Asset)
		c.AvailableInDestination = HasRoute(destinationRoutes, network.InternalName, c.Asset)
		assets = append(assets, c)
	}
	return assets
}

// HasRoute reports whether routes contains exactly (network, asset)
func HasRoute(routes []types.Route, network, asset string) bool {
	for _, r := range routes {
		if r.Network == network && r.Asset == asset {
			return true
		}
	}
	return false
}

// FilterActive drops inactive networks and exchanges that are not active
func FilterActive(raw types.Settings) types.Settings {
	networks := make([]types.Network, 0, len(raw.Networks))
	for _, n := range raw.Networks {
		if n.Status != types.NetworkInactive {
			networks = append(networks, n)
		}
	}

	exchanges := make([]types.Exchange, 0, len(raw.Exchanges))
	for _, e := range raw.Exchanges {
		if e.Status == string(types.NetworkActive) {
			exchanges = append(exchanges, e)
		}
	}

	raw.Networks = networks
	raw.Exchanges = exchanges
	return raw
}

// Layer returns the layer with the given internal name
func (s *AppSettings) Layer(internalName string) (*Layer, bool) {
	for i := range s.Layers {
		if strings.EqualFold(s.Layers[i].InternalName, internalName) {
			return &s.Layers[i], true
		}
	}
	return nil, false
}

// NetworkByCurrencyID returns the layer offering the network currency with id
func (s *AppSettings) NetworkByCurrencyID(id int) (*Layer, bool) {
	for i := range s.Layers {
		for _, c := range s.Layers[i].Currencies {
			if c.ID == id {
				return &s.Layers[i], true
			}
		}
	}
	return nil, false
}

// ExchangeByCurrencyID returns the exchange offering the exchange currency with id
func (s *AppSettings) ExchangeByCurrencyID(id int) (*ResolvedExchange, bool) {
	for i := range s.Exchanges {
		for _, c := range s.Exchanges[i].Currencies {
			if c.ID == id {
				return &s.Exchanges[i], true
			}
		}
	}
	return nil, false
}
