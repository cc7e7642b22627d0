package cmd

import (
	"fmt"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect configured accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured accounts with their masked wallet address",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.accounts.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(accounts) == 0 {
				_, err := fmt.Fprintln(out, "no accounts configured")
				return err
			}

			for _, account := range accounts {
				address := "invalid private key"
				if derived, err := app.signer.DeriveAddress(account.PrivateKey); err == nil {
					address = domain.MaskAddress(derived)
				}

				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", account.Label(), address, proxyLabel(account), socialLabel(account))
			}

			return nil
		},
	}
}

func proxyLabel(account domain.Account) string {
	if account.Proxy == "" {
		return "direct"
	}
	return "proxy"
}

func socialLabel(account domain.Account) string {
	if account.Social.Complete() {
		return "social"
	}
	return "no-social"
}
