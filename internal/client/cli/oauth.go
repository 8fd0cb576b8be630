package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/client/oauth"
)

func (c *Cli) newOAuthStartCommand() *cobra.Command {
	var next string
	cmd := &cobra.Command{
		Use:   "oauth-start",
		Short: "Print the URL to sign in with Google",
		Long: `Print the URL to sign in with an external provider.
By default the backend builds the URL. When oauth.client_id is configured the
URL is built locally with PKCE and the state/verifier pair is printed as well.`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = c.withSession(false, func(ctx context.Context) error {
		return c.runOAuthStart(ctx, next)
	})

	cmd.Flags().StringVar(&next, "next", "", "path to return to after sign-in")
	return cmd
}

func (c *Cli) runOAuthStart(ctx context.Context, next string) error {
	starter := oauth.NewStarter(c.manager, c.cfg.OAuth,
		oauth.WithLogger(c.logger.With().Str("component", "oauth").Logger()))

	start, err := starter.Start(ctx, next)
	if err != nil {
		return describeError(err)
	}

	c.io.Println("Open this URL in your browser to continue:")
	c.io.Println(start.URL)
	if start.State != "" {
		c.io.Println()
		c.io.Printf("State:         %s\n", start.State)
		c.io.Printf("Code verifier: %s\n", start.Verifier)
	}
	return nil
}
