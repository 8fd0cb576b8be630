package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/validation"
	pkgapi "github.com/iudanet/apexarenas/pkg/api"
)

type otpOptions struct {
	email string
	code  string
}

func (c *Cli) newVerifyOTPCommand() *cobra.Command {
	opts := &otpOptions{}
	cmd := &cobra.Command{
		Use:   "verify-otp",
		Short: "Verify the account email with the emailed code",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(false, func(ctx context.Context) error {
		return c.runVerifyOTP(ctx, opts)
	})

	cmd.Flags().StringVar(&opts.email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.code, "code", "", "verification code")
	return cmd
}

func (c *Cli) runVerifyOTP(ctx context.Context, opts *otpOptions) error {
	email, err := c.promptEmail(opts.email)
	if err != nil {
		return err
	}
	code, err := c.inputOrPrompt(opts.code, "Code: ")
	if err != nil {
		return err
	}
	if err := validation.ValidateOTP(code); err != nil {
		return err
	}

	result, err := c.manager.VerifyOTP(ctx, pkgapi.VerifyOTPRequest{Email: email, OTP: code})
	if err != nil {
		return describeError(err)
	}

	c.io.Println("✓ Email verified.")
	if result.Message != "" {
		c.io.Println(result.Message)
	}
	return nil
}

func (c *Cli) newResendOTPCommand() *cobra.Command {
	opts := &otpOptions{}
	cmd := &cobra.Command{
		Use:   "resend-otp",
		Short: "Send a new verification code",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.withSession(false, func(ctx context.Context) error {
		email, err := c.promptEmail(opts.email)
		if err != nil {
			return err
		}
		result, err := c.manager.ResendOTP(ctx, email)
		if err != nil {
			return describeError(err)
		}
		c.printAck(result.Message, "A new code has been sent.")
		return nil
	})

	cmd.Flags().StringVar(&opts.email, "email", "", "email address")
	return cmd
}

// promptEmail читает и проверяет email
func (c *Cli) promptEmail(value string) (string, error) {
	email, err := c.inputOrPrompt(value, "Email: ")
	if err != nil {
		return "", err
	}
	email = validation.NormalizeIdentifier(email)
	if err := validation.ValidateEmail(email); err != nil {
		return "", fmt.Errorf("email: %w", err)
	}
	return email, nil
}

func (c *Cli) printAck(message, fallback string) {
	if message == "" {
		message = fallback
	}
	c.io.Printf("✓ %s\n", message)
}
