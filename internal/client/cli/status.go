package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/client/token"
)

func (c *Cli) newStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(true, c.runStatus)
	return cmd
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	snap := c.manager.Snapshot()
	if !snap.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'apexctl login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if user := snap.User; user != nil {
		if name := user.DisplayName(); name != "" {
			c.io.Printf("User: %s\n", name)
		}
		if user.Email != nil {
			c.io.Printf("Email: %s\n", *user.Email)
		}
		if user.Role != nil {
			c.io.Printf("Role: %s\n", *user.Role)
		}
	}

	info, err := token.Inspect(snap.Tokens.AccessToken)
	if err != nil {
		// Непрозрачный токен: срок действия неизвестен
		c.logger.Debug().Err(err).Msg("access token is not inspectable")
		return nil
	}
	if info.ExpiresAt.IsZero() {
		return nil
	}

	now := time.Now()
	c.io.Printf("Token expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
	if remaining := info.TTL(now); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Run 'apexctl refresh' or login again.")
	}
	return nil
}
