package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"layerswap/pkg/settings"
	"layerswap/pkg/types"
)

var chainCmd = &cobra.Command{
	Use:   "chain <network>",
	Short: "Show the EVM chain descriptor of a network",
	Long: `Build the chain descriptor a wallet needs to connect to an EVM network:
chain id, native currency, RPC endpoints, explorer, known contracts and fee
settings.

Examples:
  layerswap chain ETHEREUM_MAINNET
  layerswap chain POLYGON_MAINNET --json`,
	Args: cobra.ExactArgs(1),
	Run:  runChain,
}

var cacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Remove the cached settings",
	Run:   runClearCache,
}

func init() {
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runChain(cmd *cobra.Command, args []string) {
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

	layer, ok := appSettings.Layer(args[0])
	if !ok {
		printError(fmt.Errorf("network '%s' not found", args[0]))
		os.Exit(1)
	}
	if layer.Type != "" && layer.Type != types.NetworkTypeEVM {
		printError(fmt.Errorf("network '%s' is not an EVM network (type: %s)", layer.InternalName, layer.Type))
		os.Exit(1)
	}

	chain, err := settings.ResolveChain(layer.Network)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if a.json {
		jsonData, _ := json.MarshalIndent(chain, "", "  ")
		fmt.Println(string(jsonData))
		return
	}
	displayChain(chain)
}

func displayChain(chain *settings.Chain) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                          CHAIN")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Name:            %s\n", color.CyanString("%s", chain.Name))
	fmt.Printf("  Network:         %s\n", chain.Network)
	fmt.Printf("  Chain ID:        %s\n", chain.ID.String())
	fmt.Printf("  Native Currency: %s (%d decimals)\n", chain.NativeCurrency.Symbol, chain.NativeCurrency.Decimals)
	if chain.ExplorerURL != "" {
		fmt.Printf("  Explorer:        %s\n", chain.ExplorerURL)
	}
	for _, rpc := range chain.RPCURLs {
		fmt.Printf("  RPC:             %s\n", color.HiBlackString("%s", rpc))
	}

	names := make([]string, 0, len(chain.Contracts))
	for name := range chain.Contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-17s%s\n", name+":", chain.Contracts[name].Hex())
	}

	if chain.DefaultPriorityFee != nil {
		fmt.Printf("  Priority Fee:    %s wei\n", chain.DefaultPriorityFee.String())
	}
	fmt.Printf("  Base Fee x:      %.2f\n", chain.BaseFeeMultiplier)

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func runClearCache(cmd *cobra.Command, args []string) {
	a, err := newApp(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if err := a.cache.Clear(); err != nil {
		printError(err)
		os.Exit(1)
	}
	printSuccess(fmt.Sprintf("Removed %s", a.cache.GetFilePath()))
}
