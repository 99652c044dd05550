package routes

import (
	"sort"
	"strings"

	"layerswap/pkg/types"
)

// DisabledReason explains why a currency cannot be picked
type DisabledReason string

const (
	ReasonNone         DisabledReason = ""
	ReasonLocked       DisabledReason = "locked"
	ReasonInvalidRoute DisabledReason = "invalid_route"
)

// DefaultOrder is used for currencies without a known order
const DefaultOrder = 5

// KnownCurrencyOrder ranks well-known asset groups in menus
var KnownCurrencyOrder = map[string]int{
	"ETH":  1,
	"USDC": 2,
	"USDT": 3,
	"DAI":  4,
}

// Availability of a menu item
type Availability struct {
	Value          bool           `json:"value"`
	DisabledReason DisabledReason `json:"disabled_reason,omitempty"`
}

// MenuItem is an asset group prepared for a currency picker
type MenuItem struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Order     int              `json:"order"`
	ImgSrc    string           `json:"img_src"`
	Available Availability     `json:"is_available"`
	Group     types.AssetGroup `json:"group"`
}

// Context carries the counterpart selections of the swap form
type Context struct {
	FromExchange string
	ToExchange   string
}

// HasExchange reports whether either side of the swap is an exchange
func (c Context) HasExchange() bool {
	return c.FromExchange != "" || c.ToExchange != ""
}

// Lock pins a currency through an external signal such as a query parameter
type Lock struct {
	Locked bool
	Asset  string
}

func routeAllowed(routes []types.Route, v types.Route) bool {
	for _, r := range routes {
		if r.Network == v.Network && r.Asset == v.Asset {
			return true
		}
	}
	return false
}

// AvailableAssetGroups returns the groups with at least one value present in routes
func AvailableAssetGroups(groups []types.AssetGroup, routes []types.Route) []types.AssetGroup {
	available := make([]types.AssetGroup, 0, len(groups))
	for _, g := range groups {
		for _, v := range g.Values {
			if routeAllowed(routes, v) {
				available = append(available, g)
				break
			}
		}
	}
	return available
}

// LockedCurrency returns the group pinned by lock, if any
func LockedCurrency(groups []types.AssetGroup, lock Lock) *types.AssetGroup {
	if !lock.Locked {
		return nil
	}
	for i := range groups {
		if strings.EqualFold(groups[i].Name, lock.Asset) {
			g := groups[i]
			return &g
		}
	}
	return nil
}

// GenerateCurrencyMenuItems builds the sorted menu for the given groups.
// routes is the subset fetched for the counterpart selection; it only matters when an exchange is involved.
// A locked group replaces the whole list.
func GenerateCurrencyMenuItems(resourceURL string, groups []types.AssetGroup, ctx Context, routes []types.Route, locked *types.AssetGroup) []MenuItem {
	if locked != nil {
		groups = []types.AssetGroup{*locked}
	}

	availability := func(g types.AssetGroup) Availability {
		switch {
		case locked != nil:
			return Availability{Value: false, DisabledReason: ReasonLocked}
		case ctx.HasExchange() && !hasAsset(routes, g.Name):
			return Availability{Value: true, DisabledReason: ReasonInvalidRoute}
		default:
			return Availability{Value: true}
		}
	}

	items := make([]MenuItem, 0, len(groups))
	for _, g := range groups {
		name := g.Name
		if name == "" {
			name = "-"
		}
		order, ok := KnownCurrencyOrder[g.Name]
		if !ok {
			order = DefaultOrder
		}
		items = append(items, MenuItem{
			ID:        g.Name,
			Name:      name,
			Order:     order,
			ImgSrc:    resourceURL + "layerswap/currencies/" + strings.ToLower(g.Name) + ".png",
			Available: availability(g),
			Group:     g,
		})
	}

	SortByAvailability(items)
	return items
}

func hasAsset(routes []types.Route, asset string) bool {
	for _, r := range routes {
		if r.Asset == asset {
			return true
		}
	}
	return false
}

// SortByAvailability moves available items first, keeping relative order otherwise
func SortByAvailability(items []MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Available.Value && !items[j].Available.Value
	})
}
