package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/symboard/internal/config"
)

func initCmd() *cobra.Command {
	var home string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if home != "" {
				cfg.Board.Home = home
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "home board name")
	return cmd
}
