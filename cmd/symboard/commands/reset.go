package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/symboard/internal/service"
)

func resetCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			m := &service.MaintenanceService{DB: db, Home: cfg.Board.Home}
			res, err := m.Reset(cmd.Context(), seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d boards deleted\n", res.Removed)
			if seed {
				fmt.Fprintf(cmd.OutOrStdout(), "starter boards installed: %d\n", len(res.Seeded))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "reinstall the starter boards afterwards")
	return cmd
}
