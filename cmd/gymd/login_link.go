package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/gymdesk/internal/gym/app"
	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

var (
	linkPortal string
	linkEmail  string
)

// loginLinkCmd mints a sign-in link and prints it instead of mailing it.
// Operators use it when SMTP is down.
var loginLinkCmd = &cobra.Command{
	Use:   "login-link",
	Short: "Print a single-use sign-in link",
	RunE: func(cmd *cobra.Command, args []string) error {
		portal, ok := domain.ParsePortal(linkPortal)
		if !ok {
			return fmt.Errorf("portal must be admin or member, got %q", linkPortal)
		}

		application, err := app.New(app.LoadConfig())
		if err != nil {
			return err
		}
		defer func() { _ = application.Close() }()

		link, _, err := application.Logins().MintLink(context.Background(), portal, linkEmail)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

func init() {
	loginLinkCmd.Flags().StringVar(&linkPortal, "portal", "admin", "admin or member")
	loginLinkCmd.Flags().StringVar(&linkEmail, "email", "", "account e-mail address")
	_ = loginLinkCmd.MarkFlagRequired("email")
}
