package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/rcli/internal/configs"
	"github.com/PolarWolf314/rcli/internal/ui"
	"github.com/PolarWolf314/rcli/internal/utils"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const maskedSecret = "********"

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rcli configuration",
		Long: `Creates and shows the config file holding rcli's defaults.

The file lives at $` + configs.EnvConfigPath + ` when set, otherwise in your user
config directory as rcli/config.toml.

Examples:
  rcli config init
  rcli config show --json`,
	}
	configCmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  noArgs,
		Annotations: map[string]string{
			annotationIgnoreConfigErrors: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config init command")
			out := cmd.OutOrStdout()

			if utils.Exists(ConfigPath) && !force {
				fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" Config file already exists at "+ui.Path.Sprint(ConfigPath))
				fmt.Fprintln(out, ui.HintLine("Use "+ui.Flag.Sprint("--force")+" to overwrite it with the defaults"))
				return nil
			}

			if err := configs.Save(ConfigPath, configs.Default()); err != nil {
				return Logger.ErrorfAndReturn("Failed to write config: %w", err)
			}
			fmt.Fprintln(out, ui.SuccessLine("Wrote default config to "+ui.Path.Sprint(ConfigPath)))
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return initCmd
}

func newConfigShowCmd() *cobra.Command {
	var asJSON bool

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config show command")
			Logger.Debugf("Flags: json=%t", asJSON)
			out := cmd.OutOrStdout()

			shown := *Config
			if shown.JWT.Secret != "" {
				shown.JWT.Secret = maskedSecret
			}

			if asJSON {
				output, err := json.MarshalIndent(shown, "", "  ")
				if err != nil {
					return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
				}
				fmt.Fprintln(out, string(output))
				return nil
			}

			header := ui.Info.Sprint("Configuration") + " " + ui.Path.Sprint(ConfigPath)
			if !utils.Exists(ConfigPath) {
				header += " " + ui.Muted.Sprint("not created yet")
			}
			fmt.Fprintln(out, header+":")
			fmt.Fprintln(out)
			return toml.NewEncoder(out).Encode(shown)
		},
	}

	showCmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return showCmd
}
