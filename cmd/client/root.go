package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-food-order/internal/adapter"
	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/spf13/cobra"
)

// clientOptions holds the persistent flags shared by every subcommand.
// Non-empty flags override the FOOD_ORDER_* environment.
type clientOptions struct {
	server   string
	token    string
	timeout  time.Duration
	logLevel string
}

// NewRootCmd creates the root command of the food ordering CLI.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &clientOptions{}

	cmd := &cobra.Command{
		Use:   "food-order",
		Short: "Command-line client for the food ordering API",
		Long: `food-order talks to a food ordering server: register and log in,
browse menus and place orders. Results are printed as JSON.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.server, "server", "", "API base URL (env FOOD_ORDER_SERVER)")
	flags.StringVar(&opts.token, "token", "", "session token for protected routes (env FOOD_ORDER_TOKEN)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "request timeout (env FOOD_ORDER_REQUEST_TIMEOUT)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level of the client, logs go to stderr")

	cmd.AddCommand(newVersionCmd(buildInfo))
	cmd.AddCommand(newPingCmd(opts))
	cmd.AddCommand(newRegisterCmd(opts))
	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newMenusCmd(opts))
	cmd.AddCommand(newCustomersCmd(opts))
	cmd.AddCommand(newOrderCmd(opts))
	cmd.AddCommand(newSummaryCmd(opts))

	return cmd
}

// apiClient builds an [adapter.APIClient] from the environment and the
// persistent flags.
func (o *clientOptions) apiClient(cmd *cobra.Command) (adapter.APIClient, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, err
	}

	if o.server != "" {
		cfg.ServerURL = o.server
	}
	if o.token != "" {
		cfg.Token = o.token
	}
	if o.timeout > 0 {
		cfg.RequestTimeout = o.timeout
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(cmd.ErrOrStderr(), "food-order-client", o.logLevel)
	return adapter.NewHTTPAPIClient(*cfg, log)
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	return nil
}
