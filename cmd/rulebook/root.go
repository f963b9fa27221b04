package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/rulebook/internal/version"
	"github.com/arthur-debert/rulebook/pkg/config"
	"github.com/arthur-debert/rulebook/pkg/filesystem"
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/paths"
	"github.com/arthur-debert/rulebook/pkg/ruleset"
	"github.com/arthur-debert/rulebook/pkg/ui"
)

// rootFlags holds the persistent flags shared by all commands
type rootFlags struct {
	verbosity int
	rulesDir  string
	format    string

	cfg *config.Config
}

// config loads the application configuration once per invocation and
// caches it for subsequent callers
func (f *rootFlags) config() (*config.Config, error) {
	if f.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		f.cfg = cfg
	}
	return f.cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "rulebook",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.rulesDir, "rules-dir", "", MsgFlagRulesDir)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newMatchCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newShowCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newInitCmd(flags))
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

// newManCmd generates man pages into the given directory
func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{Title: "RULEBOOK", Section: "1"}
			return doc.GenManTree(rootCmd, header, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "man", "Output directory for man pages")
	return cmd
}

// loadRuleset resolves the ruleset directory and loads it. The --rules-dir
// flag wins; otherwise discovery walks up from the working directory using
// the configured directory name.
func loadRuleset(flags *rootFlags) (*ruleset.Ruleset, error) {
	cfg, err := flags.config()
	if err != nil {
		return nil, err
	}

	root := flags.rulesDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root, err = paths.FindRulesRoot(filesystem.NewOS(), cwd, cfg.Rules.Dir)
		if err != nil {
			return nil, err
		}
	}

	return ruleset.NewLoader().Load(root)
}

// resolveFormat picks the output format from the flag, the config file
// default, and terminal detection, in that order.
func resolveFormat(flags *rootFlags) ui.Format {
	raw := flags.format
	if raw == "" {
		if cfg, err := flags.config(); err == nil {
			raw = cfg.Output.Format
		}
	}

	format, err := ui.ParseFormat(raw)
	if err != nil {
		log.Warn().Str("format", raw).Msg("Unknown format, falling back to auto")
		format = ui.FormatAuto
	}

	return ui.Resolve(format, os.Stdout)
}

func newRenderer(flags *rootFlags) *ui.Renderer {
	return ui.NewRenderer(resolveFormat(flags))
}
