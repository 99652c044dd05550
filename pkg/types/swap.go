package types

// SwapStatus represents the current status of a swap
type SwapStatus string

const (
	SwapCreated             SwapStatus = "created"
	SwapUserTransferPending SwapStatus = "user_transfer_pending"
	SwapUserTransferDelayed SwapStatus = "user_transfer_delayed"
	SwapLsTransferPending   SwapStatus = "ls_transfer_pending"
	SwapCompleted           SwapStatus = "completed"
	SwapFailed              SwapStatus = "failed"
	SwapCancelled           SwapStatus = "cancelled"
	SwapExpired             SwapStatus = "expired"
)

// SwapStatuses lists every known status in lifecycle order
var SwapStatuses = []SwapStatus{
	SwapCreated,
	SwapUserTransferPending,
	SwapUserTransferDelayed,
	SwapLsTransferPending,
	SwapCompleted,
	SwapFailed,
	SwapCancelled,
	SwapExpired,
}

// SwapType describes the direction of a swap
type SwapType string

const (
	SwapOnRamp     SwapType = "on_ramp"
	SwapOffRamp    SwapType = "off_ramp"
	SwapCrossChain SwapType = "cross_chain"
)

// TransactionType identifies a leg of a swap
type TransactionType string

const (
	TransactionInput  TransactionType = "input"
	TransactionOutput TransactionType = "output"
	TransactionRefuel TransactionType = "refuel"
)

// SwapTransaction is an on-chain or exchange transfer belonging to a swap
type SwapTransaction struct {
	Type          TransactionType `json:"type"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

// Swap is a swap as returned by the swaps endpoint
type Swap struct {
	ID                 string            `json:"id"`
	Status             SwapStatus        `json:"status"`
	Type               SwapType          `json:"type"`
	NetworkCurrencyID  int               `json:"network_currency_id"`
	ExchangeCurrencyID int               `json:"exchange_currency_id"`
	DestinationAddress string            `json:"destination_address,omitempty"`
	SourceExchange     string            `json:"source_exchange,omitempty"`
	Transactions       []SwapTransaction `json:"transactions,omitempty"`
}

// HasTransaction reports whether the swap carries a transaction of the given type
func (s *Swap) HasTransaction(t TransactionType) bool {
	for _, tx := range s.Transactions {
		if tx.Type == t {
			return true
		}
	}
	return false
}
