package cli

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

const appName = "Apex Arenas"

func (c *Cli) newVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				c.io.Println(c.build.Version)
				return nil
			}
			c.printVersion()
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version")
	return cmd
}

func (c *Cli) printVersion() {
	banner := figure.NewFigure(appName, "cybermedium", true)
	c.io.Println(banner.String())
	c.io.Printf("Version:    %s\n", c.build.Version)
	c.io.Printf("Build Date: %s\n", c.build.BuildDate)
	c.io.Printf("Git Commit: %s\n", c.build.GitCommit)
}
