package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/symboard/internal/config"
	"github.com/jask/symboard/internal/database/repository"
)

func boardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List stored boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Store.Driver == config.DriverDir {
				boards, release, err := openCatalog(cmd.Context())
				if err != nil {
					return err
				}
				defer release()
				names, err := boards.Names(cmd.Context())
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()
			list, err := repository.NewBoardRepo(db).List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGRID\tBUTTONS\tUPDATED")
			for _, b := range list {
				marker := ""
				if b.Name == cfg.Board.Home {
					marker = " (home)"
				}
				fmt.Fprintf(w, "%s%s\t%dx%d\t%d\t%s\n", b.Name, marker, b.Rows, b.Columns, b.Buttons, b.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(removeCmd())
	return cmd
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>...",
		Short: "Delete stored boards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Store.Driver == config.DriverDir {
				return fmt.Errorf("boards rm works on the sqlite store; delete files from %s instead", cfg.Store.Dir)
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()
			repo := repository.NewBoardRepo(db)
			var missing []string
			for _, name := range args {
				removed, err := repo.Delete(cmd.Context(), name)
				if err != nil {
					return err
				}
				if !removed {
					missing = append(missing, name)
					fmt.Fprintf(cmd.ErrOrStderr(), "not found %s\n", name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", name)
			}
			if len(missing) > 0 {
				return fmt.Errorf("%d of %d boards not found", len(missing), len(args))
			}
			return nil
		},
	}
}
