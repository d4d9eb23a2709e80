package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/interfaces/cli/app"
	motdcli "leaguemotd/internal/interfaces/cli/motd"
	"leaguemotd/internal/interfaces/cli/server"
	"leaguemotd/internal/shared/version"
)

func main() {
	opts := &app.Options{}
	newApp := app.DefaultFactory(opts)

	rootCmd := &cobra.Command{
		Use:           "motd",
		Short:         "Manage the league message of the day",
		Long:          `motd adds, lists and removes the per-language messages of the day stored in Redis.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(version.String() + "\n")
	opts.BindFlags(rootCmd)

	rootCmd.AddCommand(motdcli.NewCommands(newApp)...)
	rootCmd.AddCommand(
		motdcli.NewLanguagesCommand(opts),
		server.NewCommand(newApp),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var storeErr *motd.StoreError
		if errors.As(err, &storeErr) {
			fmt.Fprintln(os.Stderr, "Cause:", storeErr)
		}
		os.Exit(1)
	}
}
