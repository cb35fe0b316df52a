package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jask/symboard/internal/board"
)

// Catalog is a board store that can enumerate its boards.
type Catalog interface {
	FetchBoard(ctx context.Context, name string) (*board.Board, error)
	Names(ctx context.Context) ([]string, error)
}

// Finding is one problem reported by Audit.
type Finding struct {
	Board string
	Err   error
}

// Report summarises the state of every board in a catalog.
type Report struct {
	Boards      int
	Invalid     []Finding
	Dangling    []Link
	Unreachable []string
}

// Link is a navigation button pointing at a board.
type Link struct {
	From string
	To   string
}

// OK reports whether the audit found nothing wrong.
func (r Report) OK() bool {
	return len(r.Invalid) == 0 && len(r.Dangling) == 0 && len(r.Unreachable) == 0
}

// Audit validates every board, lists navigation links to boards that do not
// exist, and lists boards that cannot be reached from home. Cycles are
// normal and not reported.
func Audit(ctx context.Context, c Catalog, home string) (Report, error) {
	names, err := c.Names(ctx)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Boards: len(names)}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	edges := make(map[string][]string, len(names))
	for _, n := range names {
		b, err := c.FetchBoard(ctx, n)
		if err != nil {
			if errors.Is(err, board.ErrTransport) && ctx.Err() != nil {
				return Report{}, err
			}
			rep.Invalid = append(rep.Invalid, Finding{Board: n, Err: err})
			continue
		}
		if err := b.Validate(); err != nil {
			rep.Invalid = append(rep.Invalid, Finding{Board: n, Err: err})
		}
		for _, target := range b.Links() {
			if !known[target] {
				rep.Dangling = append(rep.Dangling, Link{From: n, To: target})
				continue
			}
			edges[n] = append(edges[n], target)
		}
	}

	if !known[home] {
		return rep, fmt.Errorf("%w: home board", &board.NotFoundError{Name: home, Suggestions: Suggest(home, names)})
	}
	seen := map[string]bool{home: true}
	queue := []string{home}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range edges[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, n := range names {
		if !seen[n] {
			rep.Unreachable = append(rep.Unreachable, n)
		}
	}
	sort.Strings(rep.Unreachable)
	return rep, nil
}
