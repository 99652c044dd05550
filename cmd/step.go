package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"layerswap/pkg/types"
	"layerswap/pkg/wizard"
)

var (
	stepStatus        string
	stepType          string
	stepDepositMethod string
	stepDepositFlow   string
	stepExchange      bool
	stepInputTx       bool
	stepSignature     string
	stepAddressSource string
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Resolve the withdrawal step for a swap described by flags",
	Long: `Resolve the withdrawal wizard step offline, without fetching a swap.

The status mapping is consulted first; when it yields nothing the fallback
rules are evaluated in order and the matching rule is printed.

Examples:
  layerswap step --status completed
  layerswap step --status created --type off_ramp --deposit-method address
  layerswap step --status created --type on_ramp --exchange --deposit-flow manual`,
	Run: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)

	stepCmd.Flags().StringVar(&stepStatus, "status", string(types.SwapCreated), "Swap status")
	stepCmd.Flags().StringVar(&stepType, "type", string(types.SwapCrossChain), "Swap type: on_ramp, off_ramp or cross_chain")
	stepCmd.Flags().StringVar(&stepDepositMethod, "deposit-method", "", "Deposit method of the destination network")
	stepCmd.Flags().StringVar(&stepDepositFlow, "deposit-flow", "", "Deposit flow of the exchange: manual, external or automatic")
	stepCmd.Flags().BoolVar(&stepExchange, "exchange", false, "The swap involves an exchange")
	stepCmd.Flags().BoolVar(&stepInputTx, "input-tx", false, "The swap has an input transaction")
	stepCmd.Flags().StringVar(&stepSignature, "signature", "", "Wallet signature passed by the partner")
	stepCmd.Flags().StringVar(&stepAddressSource, "address-source", "", "Source of the destination address")
}

type stepResult struct {
	Step wizard.Step `json:"step"`
	Rule string      `json:"rule,omitempty"`
}

func runStep(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	swap := &types.Swap{
		Status: types.SwapStatus(stepStatus),
		Type:   types.SwapType(stepType),
	}
	if stepInputTx {
		swap.Transactions = append(swap.Transactions, types.SwapTransaction{Type: types.TransactionInput})
	}

	in := wizard.Input{
		Swap:                     swap,
		NetworkFound:             true,
		DestinationDepositMethod: stepDepositMethod,
		DepositFlow:              types.DepositFlow(stepDepositFlow),
		HasExchange:              stepExchange || stepDepositFlow != "",
		Signature:                stepSignature,
		AddressSource:            stepAddressSource,
	}

	result, err := decideStep(in)
	if err != nil {
		if errors.Is(err, wizard.ErrNoStep) && !jsonOutput {
			color.Yellow("No withdrawal step matches this swap")
			os.Exit(1)
		}
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Printf("\n  Step:  %s\n", color.CyanString("%s", string(result.Step)))
	fmt.Printf("  Rule:  %s\n\n", color.HiBlackString("%s", result.Rule))
}

func decideStep(in wizard.Input) (*stepResult, error) {
	step, rule, err := wizard.Resolve(in)
	if err != nil {
		return nil, err
	}
	return &stepResult{Step: step, Rule: rule}, nil
}
