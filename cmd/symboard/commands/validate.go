package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/symboard/internal/store"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every board, its links and reachability from home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, release, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			rep, err := store.Audit(cmd.Context(), boards, cfg.Board.Home)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range rep.Invalid {
				fmt.Fprintf(out, "invalid      %s: %v\n", f.Board, f.Err)
			}
			for _, l := range rep.Dangling {
				fmt.Fprintf(out, "dangling     %s -> %s\n", l.From, l.To)
			}
			for _, name := range rep.Unreachable {
				fmt.Fprintf(out, "unreachable  %s\n", name)
			}
			if !rep.OK() {
				return fmt.Errorf("%d boards checked, problems found", rep.Boards)
			}
			fmt.Fprintf(out, "%d boards ok\n", rep.Boards)
			return nil
		},
	}
}
