package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwarkentin/dbkit"
	"github.com/mwarkentin/dbkit/registry"
)

func newPingCmd(cfg *dbkit.Config) *cobra.Command {
	var group string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Open a data source group and verify connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(cfg)
			defer reg.Close()

			db, err := reg.Get(group)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping group %q: %w", group, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "group name (default group if empty)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "ping timeout")
	return cmd
}
