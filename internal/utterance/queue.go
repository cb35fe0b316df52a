// Package utterance keeps the ordered history of spoken items shown in the
// header strip.
package utterance

import "github.com/jask/symboard/internal/board"

// Item is one spoken unit. Items are immutable once appended.
type Item struct {
	SequenceID int
	Label      string
	ImageURL   string // empty when the button had no image
	Format     board.ImageFormat
}

// HasImage reports whether the item carries an image.
func (i Item) HasImage() bool { return i.ImageURL != "" }

// Queue is append-only; the only removal is Clear. The zero value is ready to use.
type Queue struct {
	items  []Item
	nextID int
}

// Append records an utterance and returns it with its sequence id.
func (q *Queue) Append(label string, img *board.ResolvedImage) Item {
	q.nextID++
	it := Item{SequenceID: q.nextID, Label: label}
	if img != nil {
		it.ImageURL = img.URL
		it.Format = img.Format
	}
	q.items = append(q.items, it)
	return it
}

// Clear empties the queue and restarts sequence ids.
func (q *Queue) Clear() {
	q.items = nil
	q.nextID = 0
}

// Len returns the number of items.
func (q *Queue) Len() int { return len(q.items) }

// Snapshot returns a copy of the items in append order.
func (q *Queue) Snapshot() []Item {
	out := make([]Item, len(q.items))
	copy(out, q.items)
	return out
}
