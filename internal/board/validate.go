package board

import "fmt"

// Activation is what pressing a button does. It is either Speak or Navigate,
// decided once when the board is validated.
type Activation interface {
	activation()
}

// Speak records an utterance and sends Label to the speech dispatcher.
type Speak struct {
	Label string
	Image *ResolvedImage
}

// Navigate switches the active board.
type Navigate struct {
	Target string
}

func (Speak) activation()    {}
func (Navigate) activation() {}

// Validate checks the grid shape, that every cell names a known button and
// that every image reference resolves. All problems are collected; nothing is
// repaired. On success the board's lookup tables and activations are built,
// after which the board must be treated as read-only.
func (b *Board) Validate() error {
	// a rejected board answers no lookups from an earlier successful pass
	b.buttonIndex, b.imageIndex, b.activations = nil, nil, nil

	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if b.Grid.Rows <= 0 || b.Grid.Columns <= 0 {
		addf("grid must have positive dimensions, got %dx%d", b.Grid.Rows, b.Grid.Columns)
	}
	if len(b.Grid.Order) != b.Grid.Rows {
		addf("grid declares %d rows but order has %d", b.Grid.Rows, len(b.Grid.Order))
	}
	for r, row := range b.Grid.Order {
		if len(row) != b.Grid.Columns {
			addf("row %d has %d cells, want %d", r, len(row), b.Grid.Columns)
		}
	}

	buttons := make(map[string]struct{}, len(b.Buttons))
	for _, btn := range b.Buttons {
		if btn.ID == "" {
			addf("button with label %q has no id", btn.Label)
			continue
		}
		if _, dup := buttons[btn.ID]; dup {
			addf("duplicate button id %q", btn.ID)
		}
		buttons[btn.ID] = struct{}{}
	}
	images := make(map[string]struct{}, len(b.Images))
	for _, img := range b.Images {
		if _, dup := images[img.ID]; dup {
			addf("duplicate image id %q", img.ID)
		}
		images[img.ID] = struct{}{}
	}

	for r, row := range b.Grid.Order {
		for c, id := range row {
			if id == "" {
				continue
			}
			if _, ok := buttons[id]; !ok {
				addf("cell (%d,%d) references unknown button %q", r, c, id)
			}
		}
	}
	for _, btn := range b.Buttons {
		if btn.ImageID == "" {
			continue
		}
		if _, ok := images[btn.ImageID]; !ok {
			addf("button %q references unknown image %q", btn.ID, btn.ImageID)
		}
	}

	if len(problems) > 0 {
		return &ConsistencyError{Board: b.Name, Problems: problems}
	}

	b.buildIndex()
	b.activations = make(map[string]Activation, len(b.Buttons))
	for _, btn := range b.Buttons {
		act, err := activationFor(b, btn)
		if err != nil {
			b.activations = nil
			return err
		}
		b.activations[btn.ID] = act
	}
	return nil
}

// Activation returns the resolved activation for a button on a validated board.
func (b *Board) Activation(buttonID string) (Activation, bool) {
	act, ok := b.activations[buttonID]
	return act, ok
}

func activationFor(b *Board, btn Button) (Activation, error) {
	if btn.LoadBoard != "" {
		return Navigate{Target: btn.LoadBoard}, nil
	}
	img, err := ResolveImage(btn, b)
	if err != nil {
		return nil, err
	}
	return Speak{Label: btn.Label, Image: img}, nil
}
