package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/symboard/internal/database"
)

// BoardRepo handles boards and their buttons, images and grid cells.
type BoardRepo struct {
	db *sql.DB
}

func NewBoardRepo(db *sql.DB) *BoardRepo { return &BoardRepo{db: db} }

// Upsert replaces the board and all of its child rows in one transaction.
// Child rows are keyed by position, so ids are stored as given even when
// they repeat; validation happens when the board is loaded.
func (r *BoardRepo) Upsert(ctx context.Context, b Board) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return upsertBoard(ctx, tx, b)
	})
}

func upsertBoard(ctx context.Context, tx *sql.Tx, b Board) error {
	if _, err := tx.ExecContext(ctx, `
	INSERT INTO boards(name, external_id, import_id, grid_rows, grid_columns, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(name) DO UPDATE SET
	 external_id=excluded.external_id,
	 import_id=excluded.import_id,
	 grid_rows=excluded.grid_rows,
	 grid_columns=excluded.grid_columns,
	 updated_at=CURRENT_TIMESTAMP;
	`, b.Name, b.ExternalID, b.ImportID, b.Rows, b.Columns); err != nil {
		return fmt.Errorf("upsert board %s: %w", b.Name, err)
	}
	for _, table := range []string{"buttons", "images", "grid_cells"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE board_name = ?", b.Name); err != nil {
			return fmt.Errorf("clear %s for %s: %w", table, b.Name, err)
		}
	}
	for _, btn := range b.Buttons {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO buttons(board_name, id, position, label, image_id, load_board) VALUES (?, ?, ?, ?, ?, ?)
		`, b.Name, btn.ID, btn.Position, btn.Label, btn.ImageID, btn.LoadBoard); err != nil {
			return fmt.Errorf("insert button %s/%s: %w", b.Name, btn.ID, err)
		}
	}
	for _, img := range b.Images {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO images(board_name, id, position, url) VALUES (?, ?, ?, ?)
		`, b.Name, img.ID, img.Position, img.URL); err != nil {
			return fmt.Errorf("insert image %s/%s: %w", b.Name, img.ID, err)
		}
	}
	for _, c := range b.Cells {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO grid_cells(board_name, row_index, col_index, button_id) VALUES (?, ?, ?, ?)
		`, b.Name, c.Row, c.Column, c.ButtonID); err != nil {
			return fmt.Errorf("insert cell %s(%d,%d): %w", b.Name, c.Row, c.Column, err)
		}
	}
	return nil
}

// Get loads a board with its children. It returns nil, nil when no board has that name.
func (r *BoardRepo) Get(ctx context.Context, name string) (*Board, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT name, external_id, import_id, grid_rows, grid_columns, created_at, updated_at
	FROM boards WHERE name = ?`, name)
	var b Board
	if err := row.Scan(&b.Name, &b.ExternalID, &b.ImportID, &b.Rows, &b.Columns, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	btnRows, err := r.db.QueryContext(ctx, `
	SELECT id, position, label, image_id, load_board FROM buttons WHERE board_name = ? ORDER BY position`, name)
	if err != nil {
		return nil, err
	}
	defer btnRows.Close()
	for btnRows.Next() {
		var btn Button
		if err := btnRows.Scan(&btn.ID, &btn.Position, &btn.Label, &btn.ImageID, &btn.LoadBoard); err != nil {
			return nil, err
		}
		b.Buttons = append(b.Buttons, btn)
	}
	if err := btnRows.Err(); err != nil {
		return nil, err
	}

	imgRows, err := r.db.QueryContext(ctx, `
	SELECT id, position, url FROM images WHERE board_name = ? ORDER BY position`, name)
	if err != nil {
		return nil, err
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img Image
		if err := imgRows.Scan(&img.ID, &img.Position, &img.URL); err != nil {
			return nil, err
		}
		b.Images = append(b.Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return nil, err
	}

	cellRows, err := r.db.QueryContext(ctx, `
	SELECT row_index, col_index, button_id FROM grid_cells WHERE board_name = ? ORDER BY row_index, col_index`, name)
	if err != nil {
		return nil, err
	}
	defer cellRows.Close()
	for cellRows.Next() {
		var c Cell
		if err := cellRows.Scan(&c.Row, &c.Column, &c.ButtonID); err != nil {
			return nil, err
		}
		b.Cells = append(b.Cells, c)
	}
	return &b, cellRows.Err()
}

// List returns a summary of every board, ordered by name.
func (r *BoardRepo) List(ctx context.Context) ([]BoardSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT b.name, b.grid_rows, b.grid_columns, COUNT(btn.id), b.updated_at
	FROM boards b LEFT JOIN buttons btn ON btn.board_name = b.name
	GROUP BY b.name ORDER BY b.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BoardSummary
	for rows.Next() {
		var s BoardSummary
		if err := rows.Scan(&s.Name, &s.Rows, &s.Columns, &s.Buttons, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Names returns every board name, ordered.
func (r *BoardRepo) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM boards ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Delete removes a board and its children. It reports false, without an
// error, when no board has that name.
func (r *BoardRepo) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("delete board %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete board %s: %w", name, err)
	}
	return n > 0, nil
}

// Count returns the number of stored boards.
func (r *BoardRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boards`).Scan(&n)
	return n, err
}
