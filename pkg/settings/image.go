package settings

import (
	"strings"

	"layerswap/pkg/types"
)

// PlaceholderImage is returned when there is nothing to resolve an image for
const PlaceholderImage = "/images/logo_placeholder.png"

// SourceKind discriminates the variants of ImageSource
type SourceKind int

const (
	SourceNetwork SourceKind = iota + 1
	SourceExchange
	SourceCurrency
	SourcePartner
)

// ImageSource is anything an image URL can be resolved for
type ImageSource interface {
	Kind() SourceKind
}

// NetworkImage resolves to the network logo
type NetworkImage struct{ InternalName string }

// ExchangeImage resolves to the exchange logo
type ExchangeImage struct{ InternalName string }

// CurrencyImage resolves to the currency logo
type CurrencyImage struct{ Asset string }

// PartnerImage resolves to the logo URL the partner registered
type PartnerImage struct{ Partner types.Partner }

func (NetworkImage) Kind() SourceKind  { return SourceNetwork }
func (ExchangeImage) Kind() SourceKind { return SourceExchange }
func (CurrencyImage) Kind() SourceKind { return SourceCurrency }
func (PartnerImage) Kind() SourceKind  { return SourcePartner }

func networkImageURL(base, internalName string) string {
	return base + "layerswap/networks/" + strings.ToLower(internalName) + ".png"
}

func currencyImageURL(base, asset string) string {
	return base + "layerswap/currencies/" + strings.ToLower(asset) + ".png"
}

// ResolveImgSrc returns the image URL for src
func (s *AppSettings) ResolveImgSrc(src ImageSource) string {
	if src == nil {
		return PlaceholderImage
	}

	switch src.Kind() {
	case SourcePartner:
		if v, ok := src.(PartnerImage); ok {
			return v.Partner.LogoURL
		}
	case SourceNetwork:
		if v, ok := src.(NetworkImage); ok {
			return networkImageURL(s.resourceURL, v.InternalName)
		}
	case SourceExchange:
		// exchanges share the networks folder
		if v, ok := src.(ExchangeImage); ok {
			return networkImageURL(s.resourceURL, v.InternalName)
		}
	case SourceCurrency:
		if v, ok := src.(CurrencyImage); ok {
			return currencyImageURL(s.resourceURL, v.Asset)
		}
	}
	return PlaceholderImage
}
