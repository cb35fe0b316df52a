package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jask/symboard/internal/board"
)

const boardExt = ".json"

// DirStore serves boards from a directory of <name>.json files.
type DirStore struct {
	Dir string
}

// FetchBoard reads and decodes <Dir>/<name>.json.
func (s *DirStore) FetchBoard(ctx context.Context, name string) (*board.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, &board.TransportError{Name: name, Err: err}
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, &board.NotFoundError{Name: name}
	}
	f, err := os.Open(filepath.Join(s.Dir, name+boardExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			names, _ := s.Names(ctx)
			return nil, &board.NotFoundError{Name: name, Suggestions: Suggest(name, names)}
		}
		return nil, &board.TransportError{Name: name, Err: err}
	}
	defer f.Close()

	b, err := board.Decode(f, name)
	if err != nil {
		return nil, &board.TransportError{Name: name, Err: err}
	}
	// The file name is the board's identity.
	b.Name = name
	return b, nil
}

// Names lists board names found in the directory.
func (s *DirStore) Names(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read board dir %s: %w", s.Dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), boardExt) {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), boardExt))
	}
	sort.Strings(out)
	return out, nil
}
