package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolarWolf314/rcli/internal/configs"
	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	logger "github.com/PolarWolf314/rcli/internal/logging"
	"github.com/PolarWolf314/rcli/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// annotationIgnoreConfigErrors marks commands that run with the default
// config when the config file cannot be loaded.
const annotationIgnoreConfigErrors = "rcli/ignore-config-errors"

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// Config is the effective configuration, loaded before every command.
	Config *configs.Config

	// ConfigPath is where Config was loaded from.
	ConfigPath string
)

// NewRootCmd builds the full rcli command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rcli",
		Short: "rcli - sign, verify and encrypt text, plus a handful of everyday utilities",
		Long: `rcli signs and verifies content with BLAKE3 keyed hashes or Ed25519,
encrypts it with XChaCha20-Poly1305, and manages the keys for both.

It also generates passwords, converts CSV to JSON or YAML, encodes base64,
issues and checks JWTs, and serves a directory over HTTP.

Defaults come from the config file (see 'rcli config show'). Flags given on
the command line always win.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)

			config, path, err := configs.LoadDefault()
			if err != nil {
				if path == "" || cmd.Annotations[annotationIgnoreConfigErrors] == "" {
					return fmt.Errorf("%w (run 'rcli config init --force' to reset it)", err)
				}
				Logger.WarnfAlways("Ignoring unreadable config %s: %v", path, err)
				config = configs.Default()
			}
			Config, ConfigPath = config, path
			Logger.Debugf("Loaded config from %s", path)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			banner := figure.NewFigure("rcli", "", true)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info.Sprint(banner.String()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.HintLine("Run "+ui.Code.Sprint("rcli --help")+" to see available commands"))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", kerrors.ErrUsage, err)
	})

	rootCmd.AddCommand(
		newTextCmd(),
		newBase64Cmd(),
		newGenpassCmd(),
		newCSVCmd(),
		newJWTCmd(),
		newHTTPCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// Execute runs rcli with os.Args and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Cobra reports unknown commands without a sentinel.
	if kerrors.KindOf(err) == kerrors.KindOther && isCobraUsageError(err) {
		err = fmt.Errorf("%w: %v", kerrors.ErrUsage, err)
	}

	fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
	return kerrors.ExitCode(err)
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	Config = nil
	ConfigPath = ""
}
