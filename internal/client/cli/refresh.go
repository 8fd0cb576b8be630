package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/client/auth"
)

func (c *Cli) newRefreshCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Obtain a new access token",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(true, c.runRefresh)
	return cmd
}

func (c *Cli) runRefresh(ctx context.Context) error {
	if !c.manager.Snapshot().IsAuthenticated() {
		return auth.ErrNoSession
	}

	if _, err := c.manager.RefreshAccessToken(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("refresh failed")
		return describeError(auth.ErrSessionExpired)
	}

	c.io.Println("✓ Access token refreshed.")
	return nil
}
