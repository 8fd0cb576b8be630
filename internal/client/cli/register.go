package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/validation"
	pkgapi "github.com/iudanet/apexarenas/pkg/api"
)

type registerOptions struct {
	name      string
	username  string
	email     string
	role      string
	passwords Passwords
}

func (c *Cli) newRegisterCommand() *cobra.Command {
	opts := &registerOptions{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Create a new account. A verification code is sent to the email address.",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(false, func(ctx context.Context) error {
		return c.runRegister(ctx, opts)
	})

	cmd.Flags().StringVar(&opts.name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.username, "username", "", "username (3-32 letters, digits or _)")
	cmd.Flags().StringVar(&opts.email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.role, "role", validation.RolePlayer, "account role: player or organizer")
	cmd.Flags().StringVar(&opts.passwords.FromArgs, "password", "", "password (prefer --password-file or APEX_PASSWORD)")
	cmd.Flags().StringVar(&opts.passwords.FromFile, "password-file", "", "read password from file")
	return cmd
}

func (c *Cli) runRegister(ctx context.Context, opts *registerOptions) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.inputOrPrompt(opts.name, "Name: ")
	if err != nil {
		return err
	}
	username, err := c.inputOrPrompt(opts.username, "Username: ")
	if err != nil {
		return err
	}
	email, err := c.inputOrPrompt(opts.email, "Email: ")
	if err != nil {
		return err
	}
	password, err := c.getPassword(opts.passwords, "Password (min 6 chars): ")
	if err != nil {
		return err
	}

	req := pkgapi.RegisterRequest{
		Name:     name,
		Username: validation.NormalizeIdentifier(username),
		Email:    validation.NormalizeIdentifier(email),
		Password: password,
		Role:     opts.role,
	}

	// Форма проверяется локально до запроса
	if err := validation.Registration(req.Name, req.Username, req.Email, req.Password, req.Role); err != nil {
		return fmt.Errorf("invalid registration data: %w", err)
	}

	c.io.Println("Registering user...")
	result, err := c.manager.Register(ctx, req)
	if err != nil {
		return describeError(err)
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	if result.Message != "" {
		c.io.Println(result.Message)
	}
	c.io.Println()
	c.io.Printf("Run 'apexctl verify-otp --email %s' with the code from the email.\n", req.Email)
	return nil
}
