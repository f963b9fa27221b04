package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rulebook/pkg/errors"
)

func newMatchCmd(flags *rootFlags) *cobra.Command {
	var (
		quiet  bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:     "match <path>...",
		Short:   MsgMatchShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := loadRuleset(flags)
			if err != nil {
				return err
			}

			selector, err := rs.Selector()
			if err != nil {
				return err
			}

			renderer := newRenderer(flags)

			var unmatched []string
			for _, path := range args {
				matched, err := selector.Select(path)
				if err != nil {
					return err
				}

				if len(matched) == 0 {
					unmatched = append(unmatched, path)
				}

				if quiet {
					for _, doc := range matched {
						fmt.Fprintln(cmd.OutOrStdout(), doc.Name)
					}
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderMatches(path, matched))
			}

			if strict && len(unmatched) > 0 {
				return errors.Newf(errors.ErrRuleNotFound,
					"%d path(s) matched no rules", len(unmatched))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}
