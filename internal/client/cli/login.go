package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/validation"
	pkgapi "github.com/iudanet/apexarenas/pkg/api"
)

type loginOptions struct {
	identifier string
	passwords  Passwords
}

func (c *Cli) newLoginCommand() *cobra.Command {
	opts := &loginOptions{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email or username",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(false, func(ctx context.Context) error {
		return c.runLogin(ctx, opts)
	})

	cmd.Flags().StringVarP(&opts.identifier, "user", "u", "", "email or username")
	cmd.Flags().StringVar(&opts.passwords.FromArgs, "password", "", "password (prefer --password-file or APEX_PASSWORD)")
	cmd.Flags().StringVar(&opts.passwords.FromFile, "password-file", "", "read password from file")
	return cmd
}

// NewLoginRequest строит тело запроса входа: идентификатор нормализуется
// и дублируется в email или username в зависимости от формы
func NewLoginRequest(identifier, password string) pkgapi.LoginRequest {
	identifier = validation.NormalizeIdentifier(identifier)
	req := pkgapi.LoginRequest{
		Identifier: identifier,
		Password:   password,
	}
	if strings.Contains(identifier, "@") {
		req.Email = identifier
	} else {
		req.Username = identifier
	}
	return req
}

func (c *Cli) runLogin(ctx context.Context, opts *loginOptions) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	identifier, err := c.inputOrPrompt(opts.identifier, "Email or username: ")
	if err != nil {
		return err
	}
	password, err := c.getPassword(opts.passwords, "Password: ")
	if err != nil {
		return err
	}

	req := NewLoginRequest(identifier, password)
	if err := validation.Login(req.Identifier, req.Password); err != nil {
		return fmt.Errorf("invalid credentials: %w", err)
	}

	c.io.Println("Authenticating...")
	result, err := c.manager.Login(ctx, req)
	if err != nil {
		return describeError(err)
	}

	snap := c.manager.Snapshot()
	if !snap.IsAuthenticated() {
		// Сервер ответил без токена: обычно нужно подтвердить email
		c.io.Println()
		if result.Message != "" {
			c.io.Println(result.Message)
		}
		if req.Email != "" {
			c.io.Printf("Run 'apexctl verify-otp --email %s' to verify your account.\n", req.Email)
		}
		return nil
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	if name := snap.User.DisplayName(); name != "" {
		c.io.Printf("Signed in as: %s\n", name)
	}
	c.io.Println("Your session has been saved.")
	return nil
}
