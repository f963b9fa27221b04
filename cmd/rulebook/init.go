package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rulebook/pkg/filesystem"
	"github.com/arthur-debert/rulebook/pkg/ruleset"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "init [dir]",
		Short:   MsgInitShort,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			switch {
			case len(args) == 1:
				dir = args[0]
			case flags.rulesDir != "":
				dir = flags.rulesDir
			default:
				cfg, err := flags.config()
				if err != nil {
					return err
				}
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = filepath.Join(cwd, cfg.Rules.Dir)
			}

			created, err := ruleset.Scaffold(filesystem.NewOS(), dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgInitDoneFormat, dir, len(created))
			return nil
		},
	}
}
