package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwarkentin/dbkit"
)

func main() {
	cfg := dbkit.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "dbkit",
		Short: "Inspect and manage configured data sources",
	}
	rootCmd.PersistentFlags().StringVarP(&cfg.SettingPath, "config", "c", dbkit.DefaultSettingPath, "connection settings file")

	rootCmd.AddCommand(newGroupsCmd(cfg))
	rootCmd.AddCommand(newPingCmd(cfg))
	rootCmd.AddCommand(newMigrateCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
