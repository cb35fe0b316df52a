package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/symboard/internal/board"
	"github.com/jask/symboard/internal/nav"
)

const home = "board_home"

type mapStore map[string]func() *board.Board

func (s mapStore) FetchBoard(_ context.Context, name string) (*board.Board, error) {
	mk, ok := s[name]
	if !ok {
		return nil, &board.NotFoundError{Name: name}
	}
	return mk(), nil
}

type spoken []string

func (s *spoken) Dispatch(text string) { *s = append(*s, text) }

func testStore() mapStore {
	return mapStore{
		home: func() *board.Board {
			return &board.Board{
				Name: home,
				Grid: board.Grid{Rows: 1, Columns: 3, Order: [][]string{{"hi", "food", "lost"}}},
				Buttons: []board.Button{
					{ID: "hi", Label: "hello", ImageID: "wave"},
					{ID: "food", Label: "food", LoadBoard: "board_food"},
					{ID: "lost", Label: "lost", LoadBoard: "board_lost"},
				},
				Images: []board.Image{{ID: "wave", URL: "https://example.com/img/wave.svg?v=2"}},
			}
		},
		"board_food": func() *board.Board {
			return &board.Board{
				Name:    "board_food",
				Grid:    board.Grid{Rows: 1, Columns: 2, Order: [][]string{{"apple", ""}}},
				Buttons: []board.Button{{ID: "apple", Label: "apple"}},
			}
		},
	}
}

func newTestApp(t *testing.T) (*App, *spoken) {
	t.Helper()
	sp := &spoken{}
	ctrl := nav.New(testStore(), sp, home)
	a := New(context.Background(), ctrl, Options{LabelWidth: 8})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	drain(t, a, a.Init())
	require.Equal(t, home, ctrl.Current())
	return a, sp
}

// drain runs a command chain synchronously, feeding board loads back in.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(boardLoadedMsg); !ok {
			return
		}
		_, cmd = a.Update(msg)
	}
}

func press(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	_, cmd := a.Update(msg)
	drain(t, a, cmd)
}

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func plain(a *App) string { return ansi.Strip(a.View()) }

func TestInitialView(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	out := plain(a)
	require.Contains(t, out, "(nothing said yet)")
	require.Contains(t, out, "hello")
	require.Contains(t, out, "→ food")
	require.Contains(t, out, "◆ wave.svg")
	require.Contains(t, out, "[board_home] ready")
	require.Contains(t, out, "q quit")
}

func TestSpeakAddsChip(t *testing.T) {
	t.Parallel()
	a, sp := newTestApp(t)

	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"hello"}, []string(*sp))
	out := plain(a)
	require.Contains(t, out, "◆ hello")
	require.Contains(t, out, "[x] clear")
	require.Contains(t, out, `said "hello"`)

	press(t, a, keyRune('x'))
	require.Empty(t, a.ctrl.Utterances())
	require.Contains(t, plain(a), "(nothing said yet)")
}

func TestNavigateAndReturnHome(t *testing.T) {
	t.Parallel()
	a, sp := newTestApp(t)

	press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "board_food", a.ctrl.Current())
	require.Equal(t, nav.StateAtLinkedBoard, a.ctrl.State())
	require.Empty(t, a.ctrl.Utterances())
	require.Contains(t, plain(a), "board: board_food")
	require.Equal(t, 0, a.cursorCol)

	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"apple"}, []string(*sp))
	require.Equal(t, home, a.ctrl.Current())
	require.Len(t, a.ctrl.Utterances(), 1)
	require.Contains(t, plain(a), `said "apple"`)
}

func TestMissingBoardKeepsCurrent(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	press(t, a, keyRune('l'))
	press(t, a, keyRune('l'))
	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, home, a.ctrl.Current())
	require.Equal(t, nav.StateAtHome, a.ctrl.State())
	require.True(t, a.statusErr)
	require.Contains(t, plain(a), "board_lost")

	press(t, a, keyRune('g'))
	require.False(t, a.statusErr)
	require.Equal(t, nav.StateAtHome, a.ctrl.State())
}

func TestMouseActivatesCell(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	// 80 columns over 3 cells: 25 wide plus a 1 column margin
	press(t, a, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Equal(t, "board_food", a.ctrl.Current())

	press(t, a, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Equal(t, "board_food", a.ctrl.Current())
}

func TestCursorStaysOnGrid(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	for i := 0; i < 5; i++ {
		press(t, a, tea.KeyMsg{Type: tea.KeyRight})
		press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, 0, a.cursorRow)
	require.Equal(t, 2, a.cursorCol)

	press(t, a, keyRune('h'))
	press(t, a, keyRune('k'))
	require.Equal(t, 1, a.cursorCol)
}

func TestTinyWindow(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	a.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	require.Contains(t, plain(a), "window too small")

	a.Update(tea.WindowSizeMsg{Width: 10, Height: 4})
	require.Error(t, a.layoutErr)
	require.Contains(t, plain(a), "window too small")

	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Contains(t, plain(a), "hello")
}

func TestQuit(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)
	_, cmd := a.Update(keyRune('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}
