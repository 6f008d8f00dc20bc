package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"ideatracker/pkg/config"
	"ideatracker/pkg/ideas"
	"ideatracker/pkg/keymaps"
	"ideatracker/pkg/ui"
	"ideatracker/pkg/undo"
	"ideatracker/pkg/utils"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
}

// NewRootCommand builds the ideatracker command tree. Flags are bound into v
// so they override the config file.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	args := &Args{}

	root := &cobra.Command{
		Use:           "ideatracker",
		Short:         "Track project ideas in the terminal",
		Long:          "ideatracker keeps a list of project ideas for the current session. Nothing is saved when it exits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			applyFlags(v, cmd.Flags())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTracker(v, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flags.Bool("verbose", false, "Enable verbose logging")
	flags.Duration("undo-window", undo.DefaultWindow, "How long a deleted idea can be restored")
	flags.Bool("no-samples", false, "Start with an empty list instead of the sample ideas")
	flags.String("export-dir", ".", "Directory for exported idea lists")
	flags.String("export-format", "json", "Export format (json, yaml, txt)")

	root.AddCommand(newKeysCommand(v, args))

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand(viper.New()).Execute()
}

// flagKeys maps command-line flags to config keys
var flagKeys = map[string]string{
	"verbose":       "verbose",
	"undo-window":   "undo_window",
	"export-dir":    "export_dir",
	"export-format": "export_format",
}

// applyFlags copies flags the user set into v. Unset flags leave the config
// file value alone.
func applyFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for flag, key := range flagKeys {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
	if f := flags.Lookup("no-samples"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("seed_samples", false)
	}
}

func newKeysCommand(v *viper.Viper, args *Args) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := config.Load(v, args.ConfigPath)
			if err != nil {
				return err
			}
			return PrintKeys(cmd.OutOrStdout(), keymaps.BuildKeyMap(cfg.KeyMap))
		},
	}
}

// PrintKeys writes one line per action with its keys and help text
func PrintKeys(w io.Writer, km keymaps.KeyMap) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, action := range keymaps.Actions() {
		b, ok := km.Binding(action)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", action, strings.Join(b.Keys(), ", "), b.Help().Desc)
	}
	return tw.Flush()
}

func runTracker(v *viper.Viper, args *Args) error {
	cfg, styles, err := config.Load(v, args.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := utils.NewLogger(cfg.Verbose, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	store := ideas.NewStore()
	if cfg.SeedSamples {
		store.SeedSamples()
	}
	coordinator := undo.NewCoordinator(store, cfg.UndoWindow, undo.WithLogger(logger))

	logger.Info("starting_tracker",
		zap.Int("ideas", store.Len()),
		zap.Duration("undo_window", coordinator.Window()))

	model := ui.NewModel(store, coordinator, cfg, styles, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tracker_failed", zap.Error(err))
		return err
	}
	return nil
}
