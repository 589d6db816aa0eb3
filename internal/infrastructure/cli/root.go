package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/doeshing/fontset/internal/app"
	"github.com/doeshing/fontset/internal/application/apply"
	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/infrastructure/cli/commands"
)

// ErrRunFailed signals that at least one app failed. Every failure has
// already been printed, so callers should exit non-zero without another line.
var ErrRunFailed = errors.New("one or more applications failed")

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// applyFlags are the root command's flags.
type applyFlags struct {
	font        string
	apps        []string
	ligatures   bool
	noLigatures bool
	verbose     bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose})
	if err != nil {
		return nil, err
	}

	var flags applyFlags
	root := &cobra.Command{
		Use:   "fontset",
		Short: "Set the font of several applications at once",
		Long: "fontset writes a font family and/or an orthographic-ligatures toggle into the\n" +
			"settings of terminals and editors, one application at a time in parallel.",
		Example: `  fontset --font "Fira Code" --apps terminal,alacritty
  fontset --no-ligatures --apps vscode --apps sublimetext`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				container.Logger.SetVerbose(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("font") && !flags.ligatures && !flags.noLigatures && len(flags.apps) == 0 {
				// Usage goes to stderr; a bare invocation is still a usage error.
				_ = cmd.Usage()
				return domain.ErrNoSetting
			}
			setting, err := buildSetting(cmd.Flags().Changed("font"), flags)
			if err != nil {
				return err
			}
			tokens := flags.apps
			if len(tokens) == 0 {
				tokens = container.Config.Preferences.DefaultApps
			}
			if len(tokens) == 0 {
				return domain.ErrNoApps
			}

			container.ApplyService.Reporter = NewConsoleReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), container.Logger)
			outcome := container.ApplyService.Run(cmd.Context(), apply.Request{Setting: setting, Tokens: tokens})
			if outcome.Failed {
				return ErrRunFailed
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&flags.font, "font", "f", "", "Font family to apply")
	root.Flags().StringSliceVarP(&flags.apps, "apps", "a", nil, "Applications to update (comma separated or repeated; default from config)")
	root.Flags().BoolVar(&flags.ligatures, "ligatures", false, "Enable orthographic ligatures")
	root.Flags().BoolVar(&flags.noLigatures, "no-ligatures", false, "Disable orthographic ligatures")
	root.MarkFlagsMutuallyExclusive("ligatures", "no-ligatures")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		commands.NewListCommand(),
		commands.NewDoctorCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewConfigCommand(container),
		commands.NewVersionCommand(),
	)
	return root, nil
}

// buildSetting turns the flags into a Setting. fontGiven distinguishes an
// explicit empty --font from no --font at all.
func buildSetting(fontGiven bool, flags applyFlags) (domain.Setting, error) {
	var font *domain.Font
	if fontGiven {
		parsed, err := domain.ParseFont(flags.font)
		if err != nil {
			return nil, err
		}
		font = &parsed
	}

	var ligatures *domain.LigaturesFlag
	switch {
	case flags.ligatures && flags.noLigatures:
		return nil, errors.New("--ligatures and --no-ligatures are mutually exclusive")
	case flags.ligatures:
		flag := domain.LigaturesEnable
		ligatures = &flag
	case flags.noLigatures:
		flag := domain.LigaturesDisable
		ligatures = &flag
	}

	setting, ok := domain.NewSetting(font, ligatures)
	if !ok {
		return nil, domain.ErrNoSetting
	}
	return setting, nil
}
