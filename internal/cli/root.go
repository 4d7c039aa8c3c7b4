// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/common/apperrors"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath        string
	profile           string
	host              string
	port              string
	clientID          string
	clientSecret      string
	logLevel          string
	output            string
	currentProperties string
}

// env is what a command needs from the process. Tests substitute their own.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// NewRootCmd builds the catalogctl command tree.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, getenv: getenv}
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "catalogctl - administer a data catalog service",
		Long: `catalogctl validates administrative commands for a data catalog service and builds the
requests they map to. Requests are printed rather than sent; profile commands edit the local
config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to config file")
	pf.StringVar(&opts.profile, "profile", "", "Profile to use from the config file")
	pf.StringVar(&opts.host, "host", "", "Hostname of the catalog service")
	pf.StringVar(&opts.port, "port", "", "Port of the catalog service")
	pf.StringVar(&opts.clientID, "client-id", "", "Client ID to authenticate with")
	pf.StringVar(&opts.clientSecret, "client-secret", "", "Client secret to authenticate with")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVarP(&opts.output, "output", "o", "", "Output format: json or yaml; yaml on a terminal by default")
	pf.StringVar(&opts.currentProperties, "current-properties", "", "File holding the current properties of the resource an update command changes")

	addResourceCommands(rootCmd, e, opts)
	rootCmd.AddCommand(newApplyCmd(e, opts))
	rootCmd.AddCommand(newVersionCmd(e, opts))
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// ExitCode maps an error returned by Execute to the process exit code: 2 for invalid arguments,
// 1 for any other failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var appErr apperrors.Error
	if errors.As(err, &appErr) && appErr.ExitCode() != 0 {
		return appErr.ExitCode()
	}
	return 1
}

func printError(w io.Writer, err error) {
	if ves, ok := validationErrors(err); ok {
		fmt.Fprintln(w, "Error: invalid command arguments")
		printViolations(w, ves)
		if len(ves.OfKind(schemaerr.KindMissingRequiredArgument))+len(ves.OfKind(schemaerr.KindForbiddenArgumentSupplied)) > 0 {
			fmt.Fprintln(w, "Run the command with --help to see the arguments it accepts.")
		}
		return
	}
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		fmt.Fprintln(w, "Error:", appErr.ErrorAll())
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
