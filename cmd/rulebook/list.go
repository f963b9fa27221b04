package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := loadRuleset(flags)
			if err != nil {
				return err
			}

			renderer := newRenderer(flags)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderRuleList(rs.Documents))
			return nil
		},
	}
}
