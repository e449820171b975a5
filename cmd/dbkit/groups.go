package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwarkentin/dbkit"
	"github.com/mwarkentin/dbkit/registry"
)

func newGroupsCmd(cfg *dbkit.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List configured data source groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(cfg)
			groups, err := reg.Groups()
			if err != nil {
				return err
			}
			for _, group := range groups {
				fmt.Fprintln(cmd.OutOrStdout(), group)
			}
			return nil
		},
	}
}
