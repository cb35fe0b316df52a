package board

import (
	"net/url"
	"strings"
)

// Board is a named grid of buttons. A loaded Board is never mutated; a fresh
// Board replaces the previous one.
type Board struct {
	Name    string
	ID      string
	Grid    Grid
	Buttons []Button
	Images  []Image

	buttonIndex map[string]int
	imageIndex  map[string]int
	activations map[string]Activation
}

// Grid describes the button placement. Order holds Rows rows of Columns
// cells each; an empty string marks an empty cell.
type Grid struct {
	Rows    int
	Columns int
	Order   [][]string
}

// Button is a single activatable symbol.
type Button struct {
	ID        string
	Label     string
	ImageID   string // empty when the button shows no image
	LoadBoard string // target board name; empty for speech buttons
}

// Image is a symbol picture referenced by buttons on the same board.
type Image struct {
	ID  string
	URL string
}

// ImageFormat tells the renderer which decoder to use.
type ImageFormat int

const (
	FormatRaster ImageFormat = iota
	FormatVector
)

func (f ImageFormat) String() string {
	if f == FormatVector {
		return "svg"
	}
	return "raster"
}

// Format derives the format discriminant from the url suffix.
func (i Image) Format() ImageFormat {
	p := i.URL
	if u, err := url.Parse(i.URL); err == nil && u.Path != "" {
		p = u.Path
	}
	if strings.HasSuffix(strings.ToLower(p), "svg") {
		return FormatVector
	}
	return FormatRaster
}

// Button looks up a button by id.
func (b *Board) Button(id string) (Button, bool) {
	if b.buttonIndex != nil {
		i, ok := b.buttonIndex[id]
		if !ok {
			return Button{}, false
		}
		return b.Buttons[i], true
	}
	for _, btn := range b.Buttons {
		if btn.ID == id {
			return btn, true
		}
	}
	return Button{}, false
}

// Image looks up an image by id.
func (b *Board) Image(id string) (Image, bool) {
	if b.imageIndex != nil {
		i, ok := b.imageIndex[id]
		if !ok {
			return Image{}, false
		}
		return b.Images[i], true
	}
	for _, img := range b.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// buildIndex is called once by Validate, before the board is shared.
func (b *Board) buildIndex() {
	b.buttonIndex = make(map[string]int, len(b.Buttons))
	for i, btn := range b.Buttons {
		if _, dup := b.buttonIndex[btn.ID]; !dup {
			b.buttonIndex[btn.ID] = i
		}
	}
	b.imageIndex = make(map[string]int, len(b.Images))
	for i, img := range b.Images {
		if _, dup := b.imageIndex[img.ID]; !dup {
			b.imageIndex[img.ID] = i
		}
	}
}

// Links returns the distinct board names this board can navigate to, in
// button order.
func (b *Board) Links() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, btn := range b.Buttons {
		if btn.LoadBoard == "" {
			continue
		}
		if _, ok := seen[btn.LoadBoard]; ok {
			continue
		}
		seen[btn.LoadBoard] = struct{}{}
		out = append(out, btn.LoadBoard)
	}
	return out
}
