package wizard

import (
	"layerswap/pkg/settings"
	"layerswap/pkg/types"
)

// Query holds the wallet connection parameters the page was opened with
type Query struct {
	Signature     string
	AddressSource string
}

// NewInput looks up the network and exchange of swap in the resolved settings.
// Missing network or exchange leave the corresponding fields empty.
func NewInput(s *settings.AppSettings, swap *types.Swap, q Query) Input {
	in := Input{
		Swap:          swap,
		Signature:     q.Signature,
		AddressSource: q.AddressSource,
	}
	if s == nil || swap == nil {
		return in
	}

	if network, ok := s.NetworkByCurrencyID(swap.NetworkCurrencyID); ok {
		in.NetworkFound = true
		in.DestinationDepositMethod = network.DepositMethod
	}
	if exchange, ok := s.ExchangeByCurrencyID(swap.ExchangeCurrencyID); ok {
		in.HasExchange = true
		in.DepositFlow = exchange.DepositFlow
	}
	return in
}
