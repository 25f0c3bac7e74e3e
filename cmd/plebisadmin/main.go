package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"

	"github.com/plebishub/plebisadmin/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ae *errors.AdminError
		if stderrors.As(err, &ae) {
			fmt.Fprint(os.Stderr, ae.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plebisadmin",
		Short: "PlebisHub administration panel",
		Long: `plebisadmin serves the PlebisHub administration panel.

It renders the admin pages on the server and serves the legal
documents linked from them, from disk or from S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		versionCmd(),
	)

	return rootCmd
}
