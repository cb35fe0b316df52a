package database

import (
	"context"
	"fmt"

	"github.com/jask/symboard/internal/board"
)

// BoardSaver is the part of a board store seeding needs.
type BoardSaver interface {
	Names(ctx context.Context) ([]string, error)
	Save(ctx context.Context, b *board.Board) error
}

// SeedDefaults installs a small starter set of boards for new databases,
// with home as the top-level board. It is idempotent and safe to run on
// every startup: nothing is written once any board exists.
func SeedDefaults(ctx context.Context, s BoardSaver, home string) error {
	existing, err := s.Names(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, b := range defaultBoards(home) {
		if err := s.Save(ctx, b); err != nil {
			return fmt.Errorf("seed %s: %w", b.Name, err)
		}
	}
	return nil
}

const symbolBase = "symbols/"

func defaultBoards(home string) []*board.Board {
	return []*board.Board{
		{
			Name: home,
			Grid: board.Grid{Rows: 3, Columns: 4, Order: [][]string{
				{"i", "want", "more", "feelings"},
				{"yes", "no", "help", "food"},
				{"stop", "go", "", "people"},
			}},
			Buttons: []board.Button{
				{ID: "i", Label: "I", ImageID: "img_i"},
				{ID: "want", Label: "want", ImageID: "img_want"},
				{ID: "more", Label: "more"},
				{ID: "feelings", Label: "feelings", ImageID: "img_feelings", LoadBoard: "board_feelings"},
				{ID: "yes", Label: "yes", ImageID: "img_yes"},
				{ID: "no", Label: "no", ImageID: "img_no"},
				{ID: "help", Label: "help"},
				{ID: "food", Label: "food", ImageID: "img_food", LoadBoard: "board_food"},
				{ID: "stop", Label: "stop"},
				{ID: "go", Label: "go"},
				{ID: "people", Label: "people", LoadBoard: "board_people"},
			},
			Images: []board.Image{
				{ID: "img_i", URL: symbolBase + "i.svg"},
				{ID: "img_want", URL: symbolBase + "want.svg"},
				{ID: "img_feelings", URL: symbolBase + "feelings.svg"},
				{ID: "img_yes", URL: symbolBase + "yes.png"},
				{ID: "img_no", URL: symbolBase + "no.png"},
				{ID: "img_food", URL: symbolBase + "food.svg"},
			},
		},
		{
			Name: "board_feelings",
			Grid: board.Grid{Rows: 2, Columns: 3, Order: [][]string{
				{"happy", "sad", "angry"},
				{"tired", "", "back"},
			}},
			Buttons: []board.Button{
				{ID: "happy", Label: "happy"},
				{ID: "sad", Label: "sad"},
				{ID: "angry", Label: "angry"},
				{ID: "tired", Label: "tired"},
				{ID: "back", Label: "home", LoadBoard: home},
			},
		},
		{
			Name: "board_food",
			Grid: board.Grid{Rows: 2, Columns: 3, Order: [][]string{
				{"apple", "bread", "water"},
				{"snack", "drinks", "back"},
			}},
			Buttons: []board.Button{
				{ID: "apple", Label: "apple", ImageID: "img_apple"},
				{ID: "bread", Label: "bread"},
				{ID: "water", Label: "water"},
				{ID: "snack", Label: "snack"},
				{ID: "drinks", Label: "more food", LoadBoard: "board_food"},
				{ID: "back", Label: "home", LoadBoard: home},
			},
			Images: []board.Image{
				{ID: "img_apple", URL: symbolBase + "apple.png"},
			},
		},
		{
			Name: "board_people",
			Grid: board.Grid{Rows: 1, Columns: 4, Order: [][]string{
				{"mum", "dad", "friend", "back"},
			}},
			Buttons: []board.Button{
				{ID: "mum", Label: "mum"},
				{ID: "dad", Label: "dad"},
				{ID: "friend", Label: "friend"},
				{ID: "back", Label: "home", LoadBoard: home},
			},
		},
	}
}
