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
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"layerswap/pkg/parser"
	"layerswap/pkg/routes"
	"layerswap/pkg/types"
)

var (
	curDirection    string
	curFrom         string
	curTo           string
	curFromExchange string
	curToExchange   string
	curGroup        string
	curLock         bool
	curAsset        string
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "Show the currency menu for one side of a swap",
	Long: `Build the currency menu the swap form shows for the source (--direction from)
or destination (--direction to) side, given what is selected on the other side.

Currencies available for the route are listed first. When --lock is set the
menu only contains the currency named by --asset.

Examples:
  layerswap currencies --direction from
  layerswap currencies --direction to --from ARBITRUM_MAINNET:ETH
  layerswap currencies --direction from --to-exchange COINBASE --group USDC
  layerswap currencies --direction from --lock --asset ETH`,
	Run: runCurrencies,
}

func init() {
	rootCmd.AddCommand(currenciesCmd)

	currenciesCmd.Flags().StringVar(&curDirection, "direction", "from", "Side of the swap: from or to")
	currenciesCmd.Flags().StringVar(&curFrom, "from", "", "Selected source as <network>:<asset>")
	currenciesCmd.Flags().StringVar(&curTo, "to", "", "Selected destination as <network>:<asset>")
	currenciesCmd.Flags().StringVar(&curFromExchange, "from-exchange", "", "Source exchange internal name")
	currenciesCmd.Flags().StringVar(&curToExchange, "to-exchange", "", "Destination exchange internal name")
	currenciesCmd.Flags().StringVar(&curGroup, "group", "", "Currently selected asset group")
	currenciesCmd.Flags().BoolVar(&curLock, "lock", false, "Lock the currency given by --asset")
	currenciesCmd.Flags().StringVar(&curAsset, "asset", "", "Asset requested by the page query")
}

func runCurrencies(cmd *cobra.Command, args []string) {
	direction := strings.ToLower(curDirection)
	if direction != "from" && direction != "to" {
		printError(fmt.Errorf("direction must be 'from' or 'to', got %q", curDirection))
		os.Exit(1)
	}

	from, err := parseSelection(curFrom, curFromExchange)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	to, err := parseSelection(curTo, curToExchange)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	a, err := newApp(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !a.json {
		s.Suffix = " Fetching routes..."
		s.Start()
	}

	ctx := context.Background()
	appSettings, err := a.settings(ctx, cmd)
	if err != nil {
		s.Stop()
		printError(err)
		os.Exit(1)
	}

	settingsRoutes := appSettings.SourceRoutes
	if direction == "to" {
		settingsRoutes = appSettings.DestinationRoutes
	}
	available := routes.AvailableAssetGroups(appSettings.AssetGroups, settingsRoutes)
	locked := routes.LockedCurrency(available, routes.Lock{Locked: curLock, Asset: curAsset})

	var group *types.AssetGroup
	if curGroup != "" {
		group = routes.LockedCurrency(appSettings.AssetGroups, routes.Lock{Locked: true, Asset: curGroup})
	}

	// Source and destination routes are independent queries
	var sources, destinations []types.Route
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sources, err = a.client.GetSources(gctx, routes.SourceParams(to, group))
		return err
	})
	g.Go(func() error {
		var err error
		destinations, err = a.client.GetDestinations(gctx, routes.DestinationParams(from, group))
		return err
	})
	err = g.Wait()
	if !a.json {
		s.Stop()
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	a.logger.Debug("Fetched routes",
		zap.Int("sources", len(sources)),
		zap.Int("destinations", len(destinations)))

	fetched := sources
	if direction == "to" {
		fetched = destinations
	}
	menu := routes.GenerateCurrencyMenuItems(
		appSettings.ResourceURL(),
		available,
		routes.Context{FromExchange: from.Exchange, ToExchange: to.Exchange},
		fetched,
		locked,
	)

	if a.json {
		jsonData, _ := json.MarshalIndent(menu, "", "  ")
		fmt.Println(string(jsonData))
		return
	}
	displayMenu(direction, menu)
}

func parseSelection(route, exchange string) (routes.Selection, error) {
	sel := routes.Selection{Exchange: strings.ToUpper(exchange)}
	if route == "" {
		return sel, nil
	}
	r, err := parser.ParseRoute(route)
	if err != nil {
		return sel, err
	}
	sel.Network = r.Network
	sel.Asset = r.Asset
	return sel, nil
}

func displayMenu(direction string, menu []routes.MenuItem) {
	if len(menu) == 0 {
		fmt.Println("\nNo currencies available for this route.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                   %s CURRENCIES", strings.ToUpper(direction))
	fmt.Println(strings.Repeat("=", 70))

	for _, item := range menu {
		fmt.Printf("  %-10s  %s  %s\n",
			color.YellowString("%s", item.Name),
			getColoredAvailability(item.Available),
			color.HiBlackString("%s", item.ImgSrc))
	}

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func getColoredAvailability(a routes.Availability) string {
	switch {
	case !a.Value && a.DisabledReason == routes.ReasonLocked:
		return color.MagentaString("%-14s", "locked")
	case !a.Value:
		return color.RedString("%-14s", "unavailable")
	case a.DisabledReason == routes.ReasonInvalidRoute:
		return color.YellowString("%-14s", "invalid route")
	default:
		return color.GreenString("%-14s", "available")
	}
}
