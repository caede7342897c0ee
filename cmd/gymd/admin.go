package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/gymdesk/internal/gym/app"
	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
)

var (
	adminEmail   string
	adminName    string
	adminPhone   string
	adminGymName string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage gym owners",
}

// adminCreateCmd registers a gym owner without going through the
// bootstrap endpoint.
var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a gym owner",
	Long: `Creates an admin account, the root of a new tenant.

Example:
  gymd admin create --email owner@example.com --name "Alex Owner" --gym "Iron Temple"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(app.LoadConfig())
		if err != nil {
			return err
		}
		defer func() { _ = application.Close() }()

		admin, err := application.Admins().CreateAdmin(context.Background(), service.CreateAdminParams{
			Email:   adminEmail,
			Name:    adminName,
			Phone:   adminPhone,
			GymName: adminGymName,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.ID, admin.Email)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "owner e-mail address")
	adminCreateCmd.Flags().StringVar(&adminName, "name", "", "owner name")
	adminCreateCmd.Flags().StringVar(&adminPhone, "phone", "", "owner phone number")
	adminCreateCmd.Flags().StringVar(&adminGymName, "gym", "", "gym name")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("name")

	adminCmd.AddCommand(adminCreateCmd)
}
