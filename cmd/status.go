package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"layerswap/pkg/settings"
	"layerswap/pkg/types"
	"layerswap/pkg/wizard"
)

var (
	watchStatus   bool
	watchInterval int
	signature     string
	addressSource string
)

var statusCmd = &cobra.Command{
	Use:   "status <swap-id>",
	Short: "Check the status and withdrawal step of a swap",
	Long: `Check the status of a swap and the withdrawal step the wizard would show for it.

Examples:
  layerswap status 3f1c...9a2e
  layerswap status 3f1c...9a2e --watch
  layerswap status 3f1c...9a2e --signature 0xabc... --address-source imxMarketplace`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Watch status updates continuously")
	statusCmd.Flags().IntVar(&watchInterval, "interval", 5, "Polling interval in seconds (when watching)")
	statusCmd.Flags().StringVar(&signature, "signature", "", "Wallet signature passed by the partner")
	statusCmd.Flags().StringVar(&addressSource, "address-source", "", "Source of the destination address (e.g., imxMarketplace)")
}

type statusResult struct {
	Swap *types.Swap `json:"swap"`
	Step wizard.Step `json:"step,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) {
	swapID := args[0]

	if watchStatus {
		if err := validateWatchInterval(watchInterval); err != nil {
			printError(err)
			os.Exit(1)
		}
	}

	a, err := newApp(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	appSettings, err := a.settings(context.Background(), cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	query := wizard.Query{Signature: signature, AddressSource: addressSource}

	if watchStatus {
		watchSwapStatus(a, appSettings, swapID, query)
	} else {
		checkSwapStatus(a, appSettings, swapID, query)
	}
}

func validateWatchInterval(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("interval must be a positive number of seconds, got %d", seconds)
	}
	return nil
}

func resolveStatus(ctx context.Context, a *app, appSettings *settings.AppSettings, swapID string, query wizard.Query) (*statusResult, error) {
	swap, err := a.client.GetSwap(ctx, swapID)
	if err != nil {
		return nil, err
	}

	step, err := wizard.ResolveStep(wizard.NewInput(appSettings, swap, query))
	if err != nil && !errors.Is(err, wizard.ErrNoStep) {
		return nil, err
	}

	return &statusResult{Swap: swap, Step: step}, nil
}

func checkSwapStatus(a *app, appSettings *settings.AppSettings, swapID string, query wizard.Query) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !a.json {
		s.Suffix = " Checking swap status..."
		s.Start()
	}

	result, err := resolveStatus(context.Background(), a, appSettings, swapID, query)
	if !a.json {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if a.json {
		jsonData, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayStatus(result)
	}
}

func watchSwapStatus(a *app, appSettings *settings.AppSettings, swapID string, query wizard.Query) {
	if a.json {
		fmt.Println(`{"error": "watch mode not supported with JSON output"}`)
		os.Exit(1)
	}

	fmt.Printf("\nWatching swap status (Swap ID: %s)\n", color.CyanString("%s", swapID))
	fmt.Printf("Checking every %d seconds. Press Ctrl+C to stop.\n\n", watchInterval)

	ticker := time.NewTicker(time.Duration(watchInterval) * time.Second)
	defer ticker.Stop()

	// Check immediately first
	if checkAndDisplayStatus(a, appSettings, swapID, query) {
		return
	}

	// Then check periodically until the swap reaches a final step
	for range ticker.C {
		if checkAndDisplayStatus(a, appSettings, swapID, query) {
			return
		}
	}
}

func checkAndDisplayStatus(a *app, appSettings *settings.AppSettings, swapID string, query wizard.Query) bool {
	result, err := resolveStatus(context.Background(), a, appSettings, swapID, query)
	if err != nil {
		color.Red("Error: %v", err)
		return false
	}

	displayStatus(result)
	return wizard.IsFinal(result.Step)
}

func displayStatus(result *statusResult) {
	swap := result.Swap

	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                        SWAP STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Swap ID:         %s\n", color.CyanString("%s", swap.ID))
	fmt.Printf("  Type:            %s\n", swap.Type)
	fmt.Printf("  Status:          %s\n", getColoredStatus(swap.Status))
	if result.Step != "" {
		fmt.Printf("  Step:            %s\n", color.CyanString("%s", string(result.Step)))
	} else {
		fmt.Printf("  Step:            %s\n", color.HiBlackString("undetermined"))
	}

	for _, tx := range swap.Transactions {
		if tx.TransactionID != "" {
			fmt.Printf("  %-17s%s\n", txLabel(tx.Type), color.HiBlackString("%s", tx.TransactionID))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func getColoredStatus(status types.SwapStatus) string {
	label := strings.ToUpper(string(status))

	switch status {
	case types.SwapCompleted:
		return color.GreenString("%s", label)
	case types.SwapUserTransferPending, types.SwapLsTransferPending, types.SwapCreated:
		return color.YellowString("%s", label)
	case types.SwapFailed, types.SwapCancelled, types.SwapExpired:
		return color.RedString("%s", label)
	case types.SwapUserTransferDelayed:
		return color.MagentaString("%s", label)
	default:
		return label
	}
}

func txLabel(t types.TransactionType) string {
	if t == "" {
		return "Tx:"
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:]) + " Tx:"
}
