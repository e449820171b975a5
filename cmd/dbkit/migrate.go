package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwarkentin/dbkit"
	"github.com/mwarkentin/dbkit/registry"
	"github.com/mwarkentin/dbkit/setting"
)

func newMigrateCmd(cfg *dbkit.Config) *cobra.Command {
	var group string
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations against a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := setting.Load(cfg.SettingPath)
			if err != nil {
				return err
			}
			reg := registry.NewWithSetting(cfg, set)
			defer reg.Close()

			db, err := reg.Get(group)
			if err != nil {
				return err
			}

			driver, _ := set.Group(group).Get("driver")
			if err := registry.Migrate(db, driver, os.DirFS(dir)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations complete")
			return nil
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "group name (default group if empty)")
	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory containing goose migration files")
	return cmd
}
