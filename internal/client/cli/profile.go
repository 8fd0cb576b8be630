package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/client/auth"
)

func (c *Cli) newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the profile of the signed-in user",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(true, c.runProfile)
	return cmd
}

func (c *Cli) runProfile(ctx context.Context) error {
	if !c.manager.Snapshot().IsAuthenticated() {
		return auth.ErrNoSession
	}

	user, err := c.manager.FetchProfile(ctx)
	if err != nil {
		return describeError(err)
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	printField := func(label string, v *string) {
		if v != nil && *v != "" {
			c.io.Printf("%-9s %s\n", label+":", *v)
		}
	}
	printField("ID", user.ID)
	printField("Name", user.Name)
	printField("Username", user.Username)
	printField("Email", user.Email)
	printField("Role", user.Role)
	if user.Verified != nil {
		verified := "no"
		if *user.Verified {
			verified = "yes"
		}
		c.io.Printf("%-9s %s\n", "Verified:", verified)
	}
	return nil
}
