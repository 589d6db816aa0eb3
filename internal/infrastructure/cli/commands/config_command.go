package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/fontset/internal/app"
	configapp "github.com/doeshing/fontset/internal/application/config"
	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/fontset/internal/infrastructure/config"
)

// keyDefaultApps accepts a comma separated list as well as YAML.
const keyDefaultApps = "preferences.default_apps"

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		cfg, err := container.ConfigProvider.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return writeYAML(cmd.OutOrStdout(), cfg)
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change ~/.fontset/config.yaml",
		Args:  cobra.NoArgs,
		RunE:  show,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE:  show,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				loader, err := helpers.GetConfigLoader(container)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:     "get <key>",
			Short:   "Print one value, e.g. terminal.flavor",
			Args:    cobra.ExactArgs(1),
			Example: "  fontset config get preferences.default_apps",
			RunE: func(cmd *cobra.Command, args []string) error {
				return getConfigValue(cmd, container, args[0])
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one value; the previous file is kept as a .bak copy",
			Args:  cobra.MinimumNArgs(2),
			Example: "  fontset config set preferences.default_apps terminal,vscode\n" +
				"  fontset config set terminal.flavor gnome-terminal",
			RunE: func(cmd *cobra.Command, args []string) error {
				return setConfigValue(cmd, container, args[0], strings.Join(args[1:], " "))
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Check the configuration against the apps of this platform",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := container.ConfigProvider.Load(cmd.Context())
				if err == nil {
					err = configapp.Validate(cfg, domain.ParseApp)
				}
				if err != nil {
					return fmt.Errorf("configuration validation failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Overwrite the configuration with the defaults",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				loader, err := helpers.GetConfigLoader(container)
				if err != nil {
					return err
				}
				cfg, err := loader.Reset()
				if err != nil {
					return fmt.Errorf("failed to reset configuration: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration reset at %s\n", loader.Path())
				return writeYAML(cmd.OutOrStdout(), cfg)
			},
		},
		&cobra.Command{
			Use:   "diff",
			Short: "Show how the configuration differs from the defaults",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := container.ConfigProvider.Load(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				if diff := cmp.Diff(configinfra.DefaultConfig(), cfg); diff != "" {
					fmt.Fprintln(cmd.OutOrStdout(), diff)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoDifferencesFromDefault)
				return nil
			},
		},
	)

	return configCmd
}

func getConfigValue(cmd *cobra.Command, container *app.Container, key string) error {
	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfgMap, err := helpers.ConfigToMap(cfg)
	if err != nil {
		return err
	}
	value, found := helpers.TraverseNestedMap(cfgMap, strings.Split(key, "."))
	if !found {
		return fmt.Errorf("key %s not found in configuration", key)
	}
	return writeYAML(cmd.OutOrStdout(), value)
}

func setConfigValue(cmd *cobra.Command, container *app.Container, key, raw string) error {
	if key == "" {
		return errors.New(ErrKeyRequired)
	}
	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfgMap, err := helpers.ConfigToMap(cfg)
	if err != nil {
		return err
	}

	value := helpers.ParseYAMLValue(raw)
	if key == keyDefaultApps {
		value = appList(raw, value)
	}
	if !helpers.SetNestedMapValue(cfgMap, strings.Split(key, "."), value) {
		return fmt.Errorf("unable to set key %s", key)
	}

	updated, err := helpers.MapToConfig(cfgMap)
	if err != nil {
		return err
	}
	return helpers.SaveConfigWithValidation(container, updated)
}

// appList turns "terminal,vscode" into a list; YAML lists pass through.
func appList(raw string, parsed interface{}) interface{} {
	if _, isList := parsed.([]interface{}); isList {
		return parsed
	}
	var apps []interface{}
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			apps = append(apps, token)
		}
	}
	return apps
}

func writeYAML(out io.Writer, value interface{}) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}
