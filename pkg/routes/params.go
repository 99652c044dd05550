package routes

import (
	"net/url"

	"layerswap/pkg/types"
)

// Selection is one side of the swap form
type Selection struct {
	Network  string
	Asset    string
	Exchange string
}

// SourceParams builds the /sources query for the given destination selection.
// Backend-grouped currencies are queried by group when the destination is an exchange.
func SourceParams(to Selection, group *types.AssetGroup) url.Values {
	q := url.Values{}
	q.Set("include_unmatched", "true")
	switch {
	case to.Exchange != "" && group != nil && group.GroupedInBackend:
		q.Set("destination_asset_group", group.Name)
	case to.Network != "" && to.Asset != "":
		q.Set("destination_network", to.Network)
		q.Set("destination_asset", to.Asset)
	}
	return q
}

// DestinationParams builds the /destinations query for the given source selection
func DestinationParams(from Selection, group *types.AssetGroup) url.Values {
	q := url.Values{}
	q.Set("include_unmatched", "true")
	switch {
	case from.Exchange != "" && group != nil && group.GroupedInBackend:
		q.Set("source_asset_group", group.Name)
	case from.Network != "" && from.Asset != "":
		q.Set("source_network", from.Network)
		q.Set("source_asset", from.Asset)
	}
	return q
}
