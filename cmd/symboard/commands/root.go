package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jask/symboard/internal/config"
	"github.com/jask/symboard/internal/database"
	"github.com/jask/symboard/internal/database/repository"
	"github.com/jask/symboard/internal/store"
)

var (
	cfg     config.Config
	logPath string
)

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "symboard",
		Short:         "Symbol board for augmentative communication",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			return nil
		},
		// bare "symboard" opens the board
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&logPath, "log", "", "append diagnostics to this file")

	root.AddCommand(runCmd(), importCmd(), boardsCmd(), validateCmd(), initCmd(), resetCmd())
	return root
}

// openDB prepares the sqlite database: directory, migrations, connection.
func openDB() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

// openSQLStore opens the database and seeds the starter boards into an
// empty one.
func openSQLStore(ctx context.Context) (*store.SQLStore, *sql.DB, error) {
	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	s := &store.SQLStore{Boards: repository.NewBoardRepo(db)}
	if err := database.SeedDefaults(ctx, s, cfg.Board.Home); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}
	return s, db, nil
}

// openCatalog returns the configured board store and a func releasing it.
func openCatalog(ctx context.Context) (store.Catalog, func(), error) {
	if cfg.Store.Driver == config.DriverDir {
		return &store.DirStore{Dir: cfg.Store.Dir}, func() {}, nil
	}
	s, db, err := openSQLStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = db.Close() }, nil
}
