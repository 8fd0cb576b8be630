package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *Cli) newForgotPasswordCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset email",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(false, func(ctx context.Context) error {
		address, err := c.promptEmail(email)
		if err != nil {
			return err
		}
		result, err := c.manager.RequestPasswordReset(ctx, address)
		if err != nil {
			return describeError(err)
		}
		c.printAck(result.Message, "If the account exists, a reset link has been sent.")
		return nil
	})

	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}
