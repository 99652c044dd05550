package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layerswap/config"
	"layerswap/pkg/cache"
	"layerswap/pkg/client"
	"layerswap/pkg/logging"
	"layerswap/pkg/settings"
)

var rootCmd = &cobra.Command{
	Use:   "layerswap",
	Short: "A CLI for inspecting LayerSwap bridge settings, routes and swaps",
	Long: `layerswap is a command-line tool for the LayerSwap bridge API. It resolves
the bridge settings into networks and exchanges, shows which currencies can be
picked for a route and tells which withdrawal step a swap is at.

Examples:
  layerswap settings --network ETHEREUM_MAINNET
  layerswap currencies --direction to --from ARBITRUM_MAINNET:ETH
  layerswap status <swap-id> --watch
  layerswap chain OPTIMISM_MAINNET`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("refresh", false, "Ignore cached settings")
}

// app bundles what every command needs, built once per invocation
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	client *client.LayerSwapClient
	cache  *cache.Storage
	json   bool
}

func newApp(cmd *cobra.Command) (*app, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	logger, err := logging.New(verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := cache.NewStorage(cfg.CacheFile, cfg.CacheTTL, logger)
	if err != nil {
		return nil, err
	}

	apiClient := client.NewLayerSwapClient(cfg.APIBaseURL,
		client.WithAPIKey(cfg.APIKey),
		client.WithLogger(logger))

	return &app{
		cfg:    cfg,
		logger: logger,
		client: apiClient,
		cache:  store,
		json:   jsonOutput,
	}, nil
}

// settings fetches (or reuses) the raw settings, drops inactive entries and resolves them
func (a *app) settings(ctx context.Context, cmd *cobra.Command) (*settings.AppSettings, error) {
	refresh, _ := cmd.Flags().GetBool("refresh")
	if refresh {
		if err := a.cache.Clear(); err != nil {
			a.logger.Warn("Failed to clear settings cache", zap.Error(err))
		}
	}

	raw, err := a.cache.Settings(ctx, a.client)
	if err != nil {
		return nil, err
	}

	return settings.NewAppSettings(a.cfg, settings.FilterActive(*raw))
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}
