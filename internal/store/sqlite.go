package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/symboard/internal/board"
	"github.com/jask/symboard/internal/database/repository"
)

// SQLStore serves boards from the sqlite database.
type SQLStore struct {
	Boards *repository.BoardRepo
}

// FetchBoard loads and assembles a board. Boards are returned as stored;
// validation is the caller's job.
func (s *SQLStore) FetchBoard(ctx context.Context, name string) (*board.Board, error) {
	rec, err := s.Boards.Get(ctx, name)
	if err != nil {
		return nil, &board.TransportError{Name: name, Err: err}
	}
	if rec == nil {
		names, err := s.Boards.Names(ctx)
		if err != nil {
			return nil, &board.TransportError{Name: name, Err: err}
		}
		return nil, &board.NotFoundError{Name: name, Suggestions: Suggest(name, names)}
	}
	return fromRecord(rec), nil
}

// Names lists stored board names.
func (s *SQLStore) Names(ctx context.Context) ([]string, error) {
	names, err := s.Boards.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return names, nil
}

// Save stores b, replacing any board with the same name.
func (s *SQLStore) Save(ctx context.Context, b *board.Board) error {
	if err := s.Boards.Upsert(ctx, toRecord(b)); err != nil {
		return fmt.Errorf("save board %s: %w", b.Name, err)
	}
	return nil
}

// ImportID is the stable id recorded for a board name.
func ImportID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("board:"+name)).String()
}

func toRecord(b *board.Board) repository.Board {
	rec := repository.Board{
		Name:       b.Name,
		ExternalID: b.ID,
		ImportID:   ImportID(b.Name),
		Rows:       b.Grid.Rows,
		Columns:    b.Grid.Columns,
	}
	for i, btn := range b.Buttons {
		rb := repository.Button{ID: btn.ID, Position: i, Label: btn.Label}
		if btn.ImageID != "" {
			id := btn.ImageID
			rb.ImageID = &id
		}
		if btn.LoadBoard != "" {
			target := btn.LoadBoard
			rb.LoadBoard = &target
		}
		rec.Buttons = append(rec.Buttons, rb)
	}
	for i, img := range b.Images {
		rec.Images = append(rec.Images, repository.Image{ID: img.ID, Position: i, URL: img.URL})
	}
	for r, row := range b.Grid.Order {
		for c, id := range row {
			cell := repository.Cell{Row: r, Column: c}
			if id != "" {
				btnID := id
				cell.ButtonID = &btnID
			}
			rec.Cells = append(rec.Cells, cell)
		}
	}
	return rec
}

// fromRecord rebuilds the grid order from stored cells. Rows run from 0 to
// the highest stored row index; a row holds its cells in column order, so
// gaps in the stored data show up as short rows for validation to report.
func fromRecord(rec *repository.Board) *board.Board {
	b := &board.Board{
		Name: rec.Name,
		ID:   rec.ExternalID,
		Grid: board.Grid{Rows: rec.Rows, Columns: rec.Columns},
	}
	maxRow := -1
	for _, c := range rec.Cells {
		if c.Row > maxRow {
			maxRow = c.Row
		}
	}
	order := make([][]string, maxRow+1)
	for r := range order {
		order[r] = []string{}
	}
	for _, c := range rec.Cells {
		if c.Row < 0 {
			continue
		}
		id := ""
		if c.ButtonID != nil {
			id = *c.ButtonID
		}
		order[c.Row] = append(order[c.Row], id)
	}
	b.Grid.Order = order
	for _, rb := range rec.Buttons {
		btn := board.Button{ID: rb.ID, Label: rb.Label}
		if rb.ImageID != nil {
			btn.ImageID = *rb.ImageID
		}
		if rb.LoadBoard != nil {
			btn.LoadBoard = *rb.LoadBoard
		}
		b.Buttons = append(b.Buttons, btn)
	}
	for _, ri := range rec.Images {
		b.Images = append(b.Images, board.Image{ID: ri.ID, URL: ri.URL})
	}
	return b
}
