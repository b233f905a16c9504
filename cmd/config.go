package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/clock25/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if write, _ := cmd.Flags().GetBool("write"); write {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			if err := config.Write(path, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		}

		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().Bool("write", false, "Save the effective configuration to the config file")
}
