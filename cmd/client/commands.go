package main

import (
	"fmt"

	"github.com/MKhiriev/go-food-order/models"
	"github.com/spf13/cobra"
)

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information of the client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
			return err
		},
	}
}

func newPingCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server and its database are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.apiClient(cmd)
			if err != nil {
				return err
			}

			pong, err := client.Ping(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, pong)
		},
	}
}

func newRegisterCmd(opts *clientOptions) *cobra.Command {
	request := models.RegisterRequest{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.apiClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Register(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&request.Username, "username", "", "unique username")
	flags.StringVar(&request.Password, "password", "", "account password")
	flags.StringVar(&request.Fullname, "fullname", "", "full name")
	flags.StringVar(&request.Address, "address", "", "delivery address")
	flags.StringVar(&request.Phone, "phone", "", "phone number")
	flags.StringVar(&request.Email, "email", "", "email address")
	for _, name := range []string{"username", "password", "fullname", "address", "phone", "email"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newLoginCmd(opts *clientOptions) *cobra.Command {
	request := models.LoginRequest{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Long: `Log in with a username and password. The printed token can be
passed to protected commands with --token or FOOD_ORDER_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.apiClient(cmd)
			if err != nil {
				return err
			}

			token, err := client.Login(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd, token)
		},
	}

	cmd.Flags().StringVar(&request.Username, "username", "", "username")
	cmd.Flags().StringVar(&request.Password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newMenusCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menus",
		Short: "List all menu items with their restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.apiClient(cmd)
			if err != nil {
				return err
			}

			menus, err := client.ListMenus(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, models.DataResponse[models.MenuItem]{Data: menus})
		},
	}
}

func newCustomersCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "List registered customers (requires a token)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.apiClient(cmd)
			if err != nil {
				return err
			}

			customers, err := client.ListCustomers(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, models.DataResponse[models.Customer]{Data: customers})
		},
	}
}

func newOrderCmd(opts *clientOptions) *cobra.Command {
	request := models.OrderRequest{}

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place an order for a menu item (requires a token)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.apiClient(cmd)
			if err != nil {
				return err
			}

			created, err := client.PlaceOrder(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd, created)
		},
	}

	cmd.Flags().Int64Var(&request.MenuID, "menu-id", 0, "menu item to order")
	cmd.Flags().Int64Var(&request.Quantity, "quantity", 1, "number of items")
	_ = cmd.MarkFlagRequired("menu-id")

	return cmd
}

func newSummaryCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the total amount spent by the logged-in customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.apiClient(cmd)
			if err != nil {
				return err
			}

			summary, err := client.OrderSummary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, summary)
		},
	}
}
