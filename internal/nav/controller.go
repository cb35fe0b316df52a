package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jask/symboard/internal/board"
	"github.com/jask/symboard/internal/utterance"
)

var (
	// ErrNotLoaded is returned when a button is pressed with no board
	// installed or while a load is in flight.
	ErrNotLoaded = errors.New("no board loaded")
	// ErrUnknownButton is returned when the pressed id is not on the active board.
	ErrUnknownButton = errors.New("unknown button")
)

// Store fetches boards by name. Each call returns a fresh Board; errors
// match board.ErrBoardNotFound or board.ErrTransport.
type Store interface {
	FetchBoard(ctx context.Context, name string) (*board.Board, error)
}

// Dispatcher speaks text. Dispatch must return without waiting for audio.
type Dispatcher interface {
	Dispatch(text string)
}

// State is the controller's navigation state.
type State int

const (
	StateUnloaded State = iota
	StateAtHome
	StateAtLinkedBoard
)

func (s State) String() string {
	switch s {
	case StateAtHome:
		return "home"
	case StateAtLinkedBoard:
		return "linked"
	default:
		return "unloaded"
	}
}

// LoadRequest identifies one load. Only the most recently issued ticket
// can be committed.
type LoadRequest struct {
	Name   string
	Ticket uint64
}

// LoadResult is the outcome of fetching a LoadRequest.
type LoadResult struct {
	LoadRequest
	Board *board.Board
	Err   error
}

// Transition describes what a button press did. Load is set when the
// press requires a board switch, either the button's own navigation or the
// return home after speaking from a linked board.
type Transition struct {
	Activation board.Activation
	Utterance  *utterance.Item
	Load       *LoadRequest
}

// Controller owns the current board name, the active board and the
// utterance queue. It is driven from a single goroutine; only Fetch may run
// elsewhere.
type Controller struct {
	store  Store
	speech Dispatcher
	home   string
	logger *log.Logger

	current  string
	active   *board.Board
	queue    utterance.Queue
	latest   uint64
	inFlight bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition traces.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns an unloaded controller. speech may be nil.
func New(store Store, speech Dispatcher, home string, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		speech:  speech,
		home:    home,
		current: home,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Home returns the configured home board name.
func (c *Controller) Home() string { return c.home }

// Current returns the name of the committed board.
func (c *Controller) Current() string { return c.current }

// Board returns the active board, or nil before the first successful load.
// The board must not be modified.
func (c *Controller) Board() *board.Board { return c.active }

// Loading reports whether a load is in flight.
func (c *Controller) Loading() bool { return c.inFlight }

// State reports the navigation state. A load in flight counts as unloaded.
func (c *Controller) State() State {
	if c.active == nil || c.inFlight {
		return StateUnloaded
	}
	if c.current == c.home {
		return StateAtHome
	}
	return StateAtLinkedBoard
}

// Utterances returns a snapshot of the utterance queue.
func (c *Controller) Utterances() []utterance.Item { return c.queue.Snapshot() }

// ClearUtterances empties the queue. Navigation state is untouched.
func (c *Controller) ClearUtterances() {
	c.queue.Clear()
	c.logger.Printf("utterances cleared")
}

// Request issues a load ticket for name, superseding any load in flight.
func (c *Controller) Request(name string) LoadRequest {
	c.latest++
	c.inFlight = true
	c.logger.Printf("load requested: %s (ticket %d)", name, c.latest)
	return LoadRequest{Name: name, Ticket: c.latest}
}

// Fetch resolves a request against the store and validates the board. It
// reads no controller state besides the store, so it may run on another
// goroutine.
func (c *Controller) Fetch(ctx context.Context, req LoadRequest) LoadResult {
	res := LoadResult{LoadRequest: req}
	b, err := c.store.FetchBoard(ctx, req.Name)
	if err != nil {
		res.Err = classify(req.Name, err)
		return res
	}
	if b == nil {
		res.Err = &board.TransportError{Name: req.Name, Err: errors.New("store returned no board")}
		return res
	}
	if b.Name == "" {
		b.Name = req.Name
	}
	if err := b.Validate(); err != nil {
		res.Err = err
		return res
	}
	res.Board = b
	return res
}

// Commit installs a fetched board. Results for superseded tickets are
// discarded and report committed == false with a nil error. A failed
// result leaves the previous board and name in place.
func (c *Controller) Commit(res LoadResult) (committed bool, err error) {
	if res.Ticket != c.latest {
		c.logger.Printf("load discarded: %s (ticket %d superseded by %d)", res.Name, res.Ticket, c.latest)
		return false, nil
	}
	c.inFlight = false
	if res.Err != nil {
		c.logger.Printf("load failed: %s: %v", res.Name, res.Err)
		return false, fmt.Errorf("load %s: %w", res.Name, res.Err)
	}
	c.active = res.Board
	c.current = res.Name
	c.logger.Printf("board loaded: %s", res.Name)
	return true, nil
}

// Load fetches and commits name synchronously.
func (c *Controller) Load(ctx context.Context, name string) error {
	_, err := c.Commit(c.Fetch(ctx, c.Request(name)))
	return err
}

// Press applies a button press without performing any board switch. When
// the returned Transition carries a Load, the caller resolves it with Fetch
// and Commit.
func (c *Controller) Press(buttonID string) (Transition, error) {
	if c.State() == StateUnloaded {
		return Transition{}, ErrNotLoaded
	}
	act, ok := c.active.Activation(buttonID)
	if !ok {
		return Transition{}, fmt.Errorf("%w %q on board %s", ErrUnknownButton, buttonID, c.current)
	}

	t := Transition{Activation: act}
	switch a := act.(type) {
	case board.Navigate:
		req := c.Request(a.Target)
		t.Load = &req
	case board.Speak:
		item := c.queue.Append(a.Label, a.Image)
		t.Utterance = &item
		c.logger.Printf("speak #%d: %s", item.SequenceID, a.Label)
		if c.speech != nil {
			c.speech.Dispatch(a.Label)
		}
		if c.current != c.home {
			req := c.Request(c.home)
			t.Load = &req
		}
	}
	return t, nil
}

// Activate presses a button and resolves any resulting board switch before
// returning.
func (c *Controller) Activate(ctx context.Context, buttonID string) (Transition, error) {
	t, err := c.Press(buttonID)
	if err != nil || t.Load == nil {
		return t, err
	}
	_, err = c.Commit(c.Fetch(ctx, *t.Load))
	return t, err
}

func classify(name string, err error) error {
	if errors.Is(err, board.ErrBoardNotFound) || errors.Is(err, board.ErrTransport) || errors.Is(err, board.ErrDataConsistency) {
		return err
	}
	return &board.TransportError{Name: name, Err: err}
}
