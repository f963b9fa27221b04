package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "show <rule>",
		Short:   MsgShowShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := loadRuleset(flags)
			if err != nil {
				return err
			}

			doc, err := rs.Find(args[0])
			if err != nil {
				return err
			}

			renderer := newRenderer(flags)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderMarkdown(doc.Body))
			return nil
		},
	}
}
