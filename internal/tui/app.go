package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/symboard/internal/board"
	"github.com/jask/symboard/internal/layout"
	"github.com/jask/symboard/internal/nav"
)

const (
	headerLines = 2 // utterance strip + rule
	footerLines = 2 // status + help

	loadingPrefix = "loading "
)

// App renders the active board and routes input to the controller.
type App struct {
	ctx    context.Context
	ctrl   *nav.Controller
	logger *log.Logger
	keys   keyMap

	labelWidth int
	width      int
	height     int

	layout    layout.Layout
	layoutErr error
	cursorRow int
	cursorCol int

	status    string
	statusErr bool
}

// Options tunes presentation.
type Options struct {
	LabelWidth int
	Logger     *log.Logger
}

func New(ctx context.Context, ctrl *nav.Controller, opts Options) *App {
	if opts.LabelWidth < 1 {
		opts.LabelWidth = 8
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &App{
		ctx:        ctx,
		ctrl:       ctrl,
		logger:     opts.Logger,
		keys:       newKeyMap(),
		labelWidth: opts.LabelWidth,
	}
}

func (a *App) Init() tea.Cmd {
	a.status = loadingPrefix + a.ctrl.Home() + "..."
	return a.loadCmd(a.ctrl.Request(a.ctrl.Home()))
}

func (a *App) loadCmd(req nav.LoadRequest) tea.Cmd {
	return func() tea.Msg {
		return boardLoadedMsg(a.ctrl.Fetch(a.ctx, req))
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.relayout()
	case boardLoadedMsg:
		committed, err := a.ctrl.Commit(nav.LoadResult(m))
		if err != nil {
			a.setError(err)
			return a, nil
		}
		if committed {
			a.cursorRow, a.cursorCol = 0, 0
			a.relayout()
			switch {
			case a.ctrl.Current() != a.ctrl.Home():
				a.setStatus("board: " + a.ctrl.Current())
			case strings.HasPrefix(a.status, loadingPrefix):
				a.setStatus("")
			}
		}
	case tea.MouseMsg:
		if m.Action == tea.MouseActionRelease && m.Button == tea.MouseButtonLeft {
			if r, c, ok := a.cellAt(m.X, m.Y); ok {
				a.cursorRow, a.cursorCol = r, c
				return a, a.activateSelected()
			}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Up):
			a.moveCursor(-1, 0)
		case key.Matches(m, a.keys.Down):
			a.moveCursor(1, 0)
		case key.Matches(m, a.keys.Left):
			a.moveCursor(0, -1)
		case key.Matches(m, a.keys.Right):
			a.moveCursor(0, 1)
		case key.Matches(m, a.keys.Activate):
			return a, a.activateSelected()
		case key.Matches(m, a.keys.Clear):
			a.ctrl.ClearUtterances()
			a.setStatus("cleared")
			a.relayout()
		case key.Matches(m, a.keys.Home):
			a.setStatus(loadingPrefix + a.ctrl.Home() + "...")
			return a, a.loadCmd(a.ctrl.Request(a.ctrl.Home()))
		}
	}
	return a, nil
}

func (a *App) activateSelected() tea.Cmd {
	cell, ok := a.selectedCell()
	if !ok || cell.Empty() {
		return nil
	}
	t, err := a.ctrl.Press(cell.Button.ID)
	if err != nil {
		if errors.Is(err, nav.ErrNotLoaded) {
			a.setStatus(loadingPrefix + "...")
			return nil
		}
		a.setError(err)
		return nil
	}
	if t.Utterance != nil {
		a.setStatus(fmt.Sprintf("said %q", t.Utterance.Label))
		// the utterance strip changed; geometry does not, but the pass is cheap
		a.relayout()
	}
	if t.Load == nil {
		return nil
	}
	if nv, isNav := t.Activation.(board.Navigate); isNav {
		a.setStatus(loadingPrefix + nv.Target + "...")
	}
	return a.loadCmd(*t.Load)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.logger.Printf("error: %v", err)
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// relayout recomputes geometry and cells from the active board.
func (a *App) relayout() {
	b := a.ctrl.Board()
	if b == nil {
		a.layout, a.layoutErr = layout.Layout{}, nil
		return
	}
	a.layout, a.layoutErr = layout.Calculate(b, a.gridViewport(), layout.TerminalMargins)
	if a.layoutErr != nil {
		a.logger.Printf("layout: %v", a.layoutErr)
		return
	}
	a.clampCursor()
}

func (a *App) gridViewport() layout.Viewport {
	w, h := a.width, a.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return layout.Viewport{Height: h - headerLines - footerLines, Width: w}
}

func (a *App) moveCursor(dr, dc int) {
	a.cursorRow += dr
	a.cursorCol += dc
	a.clampCursor()
}

func (a *App) clampCursor() {
	rows := len(a.layout.Rows)
	if rows == 0 {
		a.cursorRow, a.cursorCol = 0, 0
		return
	}
	a.cursorRow = clamp(a.cursorRow, 0, rows-1)
	a.cursorCol = clamp(a.cursorCol, 0, len(a.layout.Rows[a.cursorRow])-1)
}

func (a *App) selectedCell() (layout.Cell, bool) {
	if a.cursorRow >= len(a.layout.Rows) {
		return layout.Cell{}, false
	}
	row := a.layout.Rows[a.cursorRow]
	if a.cursorCol >= len(row) || a.cursorCol < 0 {
		return layout.Cell{}, false
	}
	return row[a.cursorCol], true
}

// cellAt maps a terminal position to a grid cell.
func (a *App) cellAt(x, y int) (row, col int, ok bool) {
	if a.layoutErr != nil || len(a.layout.Rows) == 0 {
		return 0, 0, false
	}
	stepY := a.layout.CellHeight + layout.TerminalMargins.Row
	stepX := a.layout.CellWidth + layout.TerminalMargins.Column
	y -= headerLines
	if y < 0 || x < 0 || stepX <= 0 || stepY <= 0 {
		return 0, 0, false
	}
	row, col = y/stepY, x/stepX
	if row >= len(a.layout.Rows) || col >= len(a.layout.Rows[row]) {
		return 0, 0, false
	}
	return row, col, true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// messages
type boardLoadedMsg nav.LoadResult
