package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/guttosm/twprice/config"
	"github.com/guttosm/twprice/internal/app"
	"github.com/guttosm/twprice/internal/domain/dto"
	"github.com/guttosm/twprice/internal/logger"
	"github.com/guttosm/twprice/internal/service"
)

// resolverFactory is an indirection for tests; defaults to app.NewPriceResolver.
var resolverFactory = app.NewPriceResolver

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "twprice",
		Short:         "Latest trade prices for Taiwan stock codes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load configuration from environment or .env file
			config.LoadConfig()
			logger.Init()
		},
	}
	root.AddCommand(newServeCmd(), newQuoteCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = config.AppConfig.Server.Port
			}
			logger.L().Info().Msg("starting API server")

			router, cleanup, err := app.InitializeApp()
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}

			server := startServer(router, port)
			gracefulShutdown(cmd.Context(), server, cleanup)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port for the API server (default SERVER_PORT)")
	return cmd
}

func newQuoteCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "quote CODE...",
		Short: "Resolve ticker codes once and print the JSON result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := resolverFactory(config.AppConfig)
			return writeQuotes(cmd.Context(), cmd.OutOrStdout(), resolver, args, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	return cmd
}

// writeQuotes resolves codes and writes the same JSON body POST /api/prices returns.
func writeQuotes(ctx context.Context, w io.Writer, resolver service.PriceResolver, codes []string, pretty bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	resp := dto.NewPricesResponse(resolver.Resolve(ctx, codes))

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
