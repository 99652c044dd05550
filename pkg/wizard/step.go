package wizard

import (
	"errors"

	"layerswap/pkg/types"
)

// ErrNoStep is returned when there is no swap, or an off-ramp swap's destination network is unknown
var ErrNoStep = errors.New("no withdrawal step matches the swap")

// Step is a screen of the withdrawal wizard
type Step string

const (
	StepWalletConnect               Step = "wallet_connect"
	StepProcessingWalletTransaction Step = "processing_wallet_transaction"
	StepOffRampWithdrawal           Step = "offramp_withdrawal"
	StepWithdrawal                  Step = "withdrawal"
	StepExternalPayment             Step = "external_payment"
	StepProcessing                  Step = "processing"
	StepSwapProcessing              Step = "swap_processing"
	StepDelay                       Step = "delay"
	StepSuccess                     Step = "success"
	StepFailed                      Step = "failed"
	StepCancelled                   Step = "cancelled"
	StepExpired                     Step = "expired"
)

// AddressSourceImxMarketplace is the address source the imx marketplace signs for
const AddressSourceImxMarketplace = "imxMarketplace"

// statusSteps maps every status to its step. An empty step means the swap has not
// progressed far enough for the status alone to decide.
var statusSteps = map[types.SwapStatus]func(*types.Swap) Step{
	types.SwapCreated: func(*types.Swap) Step { return "" },
	types.SwapUserTransferPending: func(s *types.Swap) Step {
		if s.HasTransaction(types.TransactionInput) {
			return StepSwapProcessing
		}
		return ""
	},
	types.SwapUserTransferDelayed: func(*types.Swap) Step { return StepDelay },
	types.SwapLsTransferPending:   func(*types.Swap) Step { return StepSwapProcessing },
	types.SwapCompleted:           func(*types.Swap) Step { return StepSuccess },
	types.SwapFailed:              func(*types.Swap) Step { return StepFailed },
	types.SwapCancelled:           func(*types.Swap) Step { return StepCancelled },
	types.SwapExpired:             func(*types.Swap) Step { return StepExpired },
}

// GetSwapStatusStep returns the step dictated by the swap status, or "" if there is none
func GetSwapStatusStep(swap *types.Swap) Step {
	if swap == nil {
		return ""
	}
	if f, ok := statusSteps[swap.Status]; ok {
		return f(swap)
	}
	return ""
}

// Input is everything the step decision looks at
type Input struct {
	Swap *types.Swap
	// NetworkFound is set when the network holding the swap's network currency is known
	NetworkFound bool
	// DestinationDepositMethod of that network
	DestinationDepositMethod string
	// DepositFlow of the exchange holding the swap's exchange currency; empty when there is no exchange
	DepositFlow types.DepositFlow
	HasExchange bool
	// Signature and AddressSource come from the wallet connection query
	Signature     string
	AddressSource string
}

func (in Input) offRamp() bool {
	return in.Swap != nil && in.Swap.Type == types.SwapOffRamp
}

func (in Input) walletSigned() bool {
	return in.Signature != "" && in.AddressSource == AddressSourceImxMarketplace
}

// Rule is one row of the fallback decision table
type Rule struct {
	Name  string
	Match func(Input) bool
	Step  Step
}

// Rules is evaluated top to bottom; the first match wins
var Rules = []Rule{
	{
		Name: "offramp-address-signed",
		Match: func(in Input) bool {
			return in.offRamp() && in.DestinationDepositMethod == types.DepositMethodAddress && in.walletSigned()
		},
		Step: StepProcessingWalletTransaction,
	},
	{
		Name: "offramp-address",
		Match: func(in Input) bool {
			return in.offRamp() && in.DestinationDepositMethod == types.DepositMethodAddress
		},
		Step: StepWalletConnect,
	},
	{
		Name:  "offramp",
		Match: func(in Input) bool { return in.offRamp() },
		Step:  StepOffRampWithdrawal,
	},
	{
		Name:  "manual-deposit",
		Match: func(in Input) bool { return in.DepositFlow == types.DepositFlowManual },
		Step:  StepWithdrawal,
	},
	{
		Name:  "external-deposit",
		Match: func(in Input) bool { return in.DepositFlow == types.DepositFlowExternal },
		Step:  StepExternalPayment,
	},
	{
		Name:  "automatic-deposit",
		Match: func(in Input) bool { return !in.offRamp() },
		Step:  StepProcessing,
	},
}

// RuleStatus names steps decided by the swap status rather than a table rule
const RuleStatus = "status"

// Decide runs the fallback table only.
// Off-ramp rules read the destination network, so an unknown network is ErrNoStep.
func Decide(in Input) (Step, string, error) {
	if in.Swap == nil || (in.offRamp() && !in.NetworkFound) {
		return "", "", ErrNoStep
	}
	for _, r := range Rules {
		if r.Match(in) {
			return r.Step, r.Name, nil
		}
	}
	return "", "", ErrNoStep
}

// Resolve returns the step to show for in.Swap and the name of the rule that chose it.
// The status mapping takes precedence over the table and reports RuleStatus.
func Resolve(in Input) (Step, string, error) {
	if in.Swap == nil {
		return "", "", ErrNoStep
	}
	if step := GetSwapStatusStep(in.Swap); step != "" {
		return step, RuleStatus, nil
	}
	return Decide(in)
}

// ResolveStep is Resolve without the rule name
func ResolveStep(in Input) (Step, error) {
	step, _, err := Resolve(in)
	return step, err
}

// IsFinal reports whether step ends the withdrawal flow
func IsFinal(step Step) bool {
	switch step {
	case StepSuccess, StepFailed, StepCancelled, StepExpired:
		return true
	}
	return false
}
