package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"layerswap/pkg/settings"
	"layerswap/pkg/types"
)

var (
	filterNetwork string
	filterAsset   string
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"networks", "ls"},
	Short:   "List networks and exchanges with their currencies",
	Long: `Fetch the LayerSwap settings and show every active network and exchange,
their image URLs and whether each currency can be used as a source or a
destination.

You can filter networks by internal name or currencies by asset.

Examples:
  layerswap settings
  layerswap settings --network ARBITRUM_MAINNET
  layerswap settings --asset USDC --json`,
	Run: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.Flags().StringVar(&filterNetwork, "network", "", "Filter by network internal name")
	settingsCmd.Flags().StringVar(&filterAsset, "asset", "", "Filter by currency asset")
}

func runSettings(cmd *cobra.Command, args []string) {
	a, err := newApp(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !a.json {
		s.Suffix = " Fetching settings..."
		s.Start()
	}

	appSettings, err := a.settings(context.Background(), cmd)
	if !a.json {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	layers := filterLayers(appSettings.Layers, filterNetwork, filterAsset)

	// Output
	if a.json {
		output := map[string]interface{}{
			"layers":    layers,
			"exchanges": appSettings.Exchanges,
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayLayers(layers)
		if filterNetwork == "" && filterAsset == "" {
			displayExchanges(appSettings.Exchanges)
		}
	}
}

func filterLayers(layers []settings.Layer, network, asset string) []settings.Layer {
	filtered := make([]settings.Layer, 0, len(layers))
	for _, l := range layers {
		if network != "" && !strings.EqualFold(l.InternalName, network) {
			continue
		}
		if asset != "" {
			var assets []types.NetworkCurrency
			for _, c := range l.Assets {
				if strings.EqualFold(c.Asset, asset) {
					assets = append(assets, c)
				}
			}
			if len(assets) == 0 {
				continue
			}
			l.Assets = assets
		}
		filtered = append(filtered, l)
	}
	return filtered
}

func displayLayers(layers []settings.Layer) {
	if len(layers) == 0 {
		fmt.Println("\nNo networks found matching the criteria.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	color.Green("                              NETWORKS")
	fmt.Println(strings.Repeat("=", 90))

	for _, l := range layers {
		color.Cyan("\n%s (%s)", l.DisplayName, l.InternalName)
		fmt.Printf("  %s\n", color.HiBlackString("%s", l.ImgURL))
		fmt.Println(strings.Repeat("-", 90))

		for _, c := range l.Assets {
			fmt.Printf("  %-10s  %2d decimals  source: %s  destination: %s\n",
				color.YellowString("%s", c.Asset),
				c.Decimals,
				availabilityLabel(c.AvailableInSource),
				availabilityLabel(c.AvailableInDestination))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	fmt.Printf("\nTotal: %d networks\n\n", len(layers))
}

func displayExchanges(exchanges []settings.ResolvedExchange) {
	if len(exchanges) == 0 {
		return
	}

	color.Green("EXCHANGES")
	fmt.Println(strings.Repeat("-", 90))
	for _, e := range exchanges {
		fmt.Printf("  %-24s  %-10s  %s\n",
			color.CyanString("%s", e.DisplayName),
			string(e.DepositFlow),
			color.HiBlackString("%s", e.ImgURL))
	}
	fmt.Println()
}

func availabilityLabel(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}
	return color.RedString("no ")
}
