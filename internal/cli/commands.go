package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/envprof/internal/version"
	"github.com/arthur-debert/envprof/pkg/config"
	"github.com/arthur-debert/envprof/pkg/hooks"
	"github.com/arthur-debert/envprof/pkg/logging"
	"github.com/arthur-debert/envprof/pkg/profile"
	"github.com/arthur-debert/envprof/pkg/store"
	"github.com/arthur-debert/envprof/pkg/types"
	"github.com/arthur-debert/envprof/pkg/ui"
)

// rootFlags are the persistent flags shared by every verb.
type rootFlags struct {
	appName   string
	configDir string
	noInput   bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		flags     rootFlags
	)

	rootCmd := &cobra.Command{
		Use:   "envprof",
		Short: "Named configuration profiles for your application",
		Long: `envprof manages named profiles: persisted key/value configuration sets
created from a default template, loaded with default-inheritance and
required-field validation, and exported into the environment.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&flags.appName, "app", "", "Application name (overrides "+config.EnvAppName+")")
	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "Explicit configuration directory")
	rootCmd.PersistentFlags().BoolVar(&flags.noInput, "no-input", false, "Disable prompts, selection, and editor launching")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCreateCmd(&flags))
	rootCmd.AddCommand(newListCmd(&flags))
	rootCmd.AddCommand(newLoadCmd(&flags))
	rootCmd.AddCommand(newShowCmd(&flags))
	rootCmd.AddCommand(newEditCmd(&flags))
	rootCmd.AddCommand(newDeleteCmd(&flags))
	rootCmd.AddCommand(newPathCmd(&flags))
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

// engine bundles everything a verb needs.
type engine struct {
	cfg      *config.Config
	store    *store.Store
	resolver *profile.Resolver
	msg      types.Messenger
}

// newEngine loads configuration, resolves the store, and wires the
// console collaborators. The settings file lives inside the config
// directory, so configuration loads twice: once to find the directory,
// once with the file layered in.
func newEngine(flags *rootFlags, env types.Environ) (*engine, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, flags)

	dir, err := store.ResolveConfigDir(cfg, os.Geteuid() == 0)
	if err == nil {
		settings := filepath.Join(dir, config.ConfigFileName)
		if _, statErr := os.Stat(settings); statErr == nil {
			if cfg, err = config.Load(settings); err != nil {
				return nil, err
			}
			applyFlags(cfg, flags)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st, err := store.New(cfg)
	if err != nil {
		return nil, err
	}

	msg := ui.NewConsoleMessenger()
	collaborators := profile.Collaborators{
		Env:       env,
		Prompter:  ui.NewTerminalPrompter(),
		Editor:    ui.NewExecEditor(),
		Messenger: msg,
		Hooks:     hooks.NewRegistry(),
	}
	resolver, err := profile.New(cfg, st, collaborators)
	if err != nil {
		return nil, err
	}

	return &engine{cfg: cfg, store: st, resolver: resolver, msg: msg}, nil
}

func applyFlags(cfg *config.Config, flags *rootFlags) {
	if flags.appName != "" {
		cfg.AppName = flags.appName
	}
	if flags.configDir != "" {
		cfg.ConfigDir = flags.configDir
	}
	if flags.noInput {
		cfg.Interactive = false
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("envprof version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newCreateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new profile from the default template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(flags, types.NewOSEnviron())
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			path, err := eng.resolver.Create(name, nil)
			if err != nil {
				return err
			}
			eng.msg.Info("Created %s", path)
			return nil
		},
	}
}

func newListCmd(flags *rootFlags) *cobra.Command {
	var formatName string
	var long bool

	cmd := &cobra.Command{
		Use:   "list [pattern]",
		Short: "List profiles, optionally filtered by exact name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(flags, types.NewOSEnviron())
			if err != nil {
				return err
			}
			pattern := ""
			if len(args) > 0 {
				pattern = args[0]
			}
			names, err := eng.store.List(pattern)
			if err != nil {
				return err
			}

			listing := ui.ProfileListing{}
			for _, name := range names {
				entry := ui.ProfileEntry{Name: name}
				if long {
					entry.Path = eng.store.PathFor(name)
				}
				listing.Profiles = append(listing.Profiles, entry)
			}

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return err
			}
			return ui.RenderProfileList(os.Stdout, format.Resolve(os.Stdout), listing)
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "auto", "Output format: auto, term, text, json, yaml")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Include file paths")
	return cmd
}

func newLoadCmd(flags *rootFlags) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Resolve a profile and print it for shell export",
		Long: `Resolve a profile against the default template, validate required
variables, export the result into this process, and print it in a
shell-evalable form:

    eval "$(envprof load staging)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(flags, types.NewOSEnviron())
			if err != nil {
				return err
			}
			resolved, err := eng.resolver.Load(args[0])
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return err
			}
			return ui.RenderResolved(os.Stdout, concreteOrText(format),
				resolvedView(resolved, eng.resolver.Template().RequiredNames()))
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "text", "Output format: text, json, yaml")
	return cmd
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Display a resolved profile without touching the environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// A scratch namespace keeps show side-effect free.
			eng, err := newEngine(flags, types.NewMapEnviron())
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			if name == "" {
				if name, err = eng.resolver.Select(""); err != nil {
					return err
				}
			}
			resolved, err := eng.resolver.Load(name)
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return err
			}
			return ui.RenderResolved(os.Stdout, format.Resolve(os.Stdout),
				resolvedView(resolved, eng.resolver.Template().RequiredNames()))
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "auto", "Output format: auto, term, text, json, yaml")
	return cmd
}

func newEditCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [name]",
		Short: "Open a profile in your editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(flags, types.NewOSEnviron())
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return eng.resolver.Edit(name)
		},
	}
}

func newDeleteCmd(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(flags, types.NewOSEnviron())
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return eng.resolver.Delete(name, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")
	return cmd
}

func newPathCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path <name>",
		Short: "Print the file path a profile name maps to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(flags, types.NewOSEnviron())
			if err != nil {
				return err
			}
			fmt.Println(eng.store.PathFor(args[0]))
			return nil
		},
	}
}

// concreteOrText pins auto-detection to plain text; load output is
// meant for eval, never for styling.
func concreteOrText(f ui.Format) ui.Format {
	if f == ui.FormatAuto || f == ui.FormatTerminal {
		return ui.FormatText
	}
	return f
}

func resolvedView(resolved *profile.ResolvedProfile, required []string) ui.ResolvedView {
	req := make(map[string]bool, len(required))
	for _, name := range required {
		req[name] = true
	}
	return ui.ResolvedView{
		Profile:   resolved.Profile,
		Variables: resolved.Map(),
		Order:     resolved.Names(),
		Required:  req,
	}
}
