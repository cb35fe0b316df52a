package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/symboard/internal/database"
	"github.com/jask/symboard/internal/database/repository"
	"github.com/jask/symboard/internal/store"
)

// boardTables are wiped children first.
var boardTables = []string{"grid_cells", "images", "buttons", "boards"}

// MaintenanceService houses destructive actions on the board database.
type MaintenanceService struct {
	DB *sql.DB
	// Home names the top-level board installed by a reseed.
	Home string
}

// ResetResult reports what Reset removed and installed.
type ResetResult struct {
	Removed int
	Seeded  []string
}

// Reset deletes every stored board. With reseed set, the starter boards are
// installed afterwards with Home as the top-level board. The wipe is one
// transaction; a failed reseed leaves the database empty, not half-wiped.
func (s *MaintenanceService) Reset(ctx context.Context, reseed bool) (ResetResult, error) {
	if s.DB == nil {
		return ResetResult{}, fmt.Errorf("maintenance: db not configured")
	}
	if reseed && s.Home == "" {
		return ResetResult{}, fmt.Errorf("maintenance: home board required to reseed")
	}

	var res ResetResult
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM boards").Scan(&res.Removed); err != nil {
			return fmt.Errorf("count boards: %w", err)
		}
		for _, t := range boardTables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return ResetResult{}, err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")

	if !reseed {
		return res, nil
	}
	boards := &store.SQLStore{Boards: repository.NewBoardRepo(s.DB)}
	if err := database.SeedDefaults(ctx, boards, s.Home); err != nil {
		return res, fmt.Errorf("reseed: %w", err)
	}
	names, err := boards.Names(ctx)
	if err != nil {
		return res, err
	}
	res.Seeded = names
	return res, nil
}
