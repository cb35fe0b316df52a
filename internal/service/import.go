package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jask/symboard/internal/board"
)

// BoardSaver persists decoded boards.
type BoardSaver interface {
	Save(ctx context.Context, b *board.Board) error
}

// ImportService loads board files into a store.
type ImportService struct {
	Boards BoardSaver
	// Force stores boards that fail validation, including ones with repeated
	// button or image ids. They are still rejected at load time.
	Force bool
}

type ImportResult struct {
	Imported []string
	Skipped  int
	Errors   []error
}

// ImportFiles decodes each file and saves it under its base name without
// the extension. A bad file is recorded in the result and skipped.
func (s *ImportService) ImportFiles(ctx context.Context, paths []string) (ImportResult, error) {
	if s.Boards == nil {
		return ImportResult{}, fmt.Errorf("import: store not configured")
	}
	res := ImportResult{}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		name, err := s.importFile(ctx, p)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("%s: %w", p, err))
			continue
		}
		res.Imported = append(res.Imported, name)
	}
	return res, nil
}

func (s *ImportService) importFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	name := BoardName(path)
	b, err := board.Decode(f, name)
	if err != nil {
		return "", err
	}
	// boards are addressed by file name, as in the dir store
	b.Name = name
	if err := b.Validate(); err != nil && !(s.Force && errors.Is(err, board.ErrDataConsistency)) {
		return "", err
	}
	// the store names the board in its own errors
	if err := s.Boards.Save(ctx, b); err != nil {
		return "", err
	}
	return b.Name, nil
}

// BoardName derives a board name from a file path: "boards/board_1_235.json"
// becomes "board_1_235".
func BoardName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
