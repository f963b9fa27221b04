package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/rules"
	"github.com/arthur-debert/rulebook/pkg/ui"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := loadRuleset(flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failures := 0
			for _, doc := range rs.Documents {
				for _, glob := range doc.Globs {
					if _, err := rules.CompilePattern(glob); err != nil {
						failures++
						fmt.Fprintf(out, "%s %s: %v\n",
							ui.ErrorStyle.Render("✗"), doc.ID, err)
					}
				}
			}

			if failures > 0 {
				return errors.Newf(errors.ErrInvalidPattern,
					"%d invalid pattern(s)", failures)
			}

			fmt.Fprintf(out, "%s %s\n", ui.SuccessStyle.Render("✓"), MsgCheckOK)
			return nil
		},
	}
}
