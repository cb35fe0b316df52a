package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/symboard/internal/service"
)

func importCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "import <file.json>...",
		Short: "Import board files into the database",
		Long:  "Import board files into the database. Each board is named after its file, so board_1_235.json becomes board_1_235.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, db, err := openSQLStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			svc := &service.ImportService{Boards: s, Force: force}
			res, err := svc.ImportFiles(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, name := range res.Imported {
				fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", name)
			}
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %v\n", e)
			}
			if res.Skipped > 0 {
				return fmt.Errorf("%d of %d files skipped", res.Skipped, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "store boards even if they fail validation")
	return cmd
}
