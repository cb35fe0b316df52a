package utterance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/symboard/internal/board"
)

func TestAppendAssignsIncreasingIDs(t *testing.T) {
	var q Queue
	a := q.Append("I", nil)
	b := q.Append("want", &board.ResolvedImage{Image: board.Image{ID: "w", URL: "want.svg"}, Format: board.FormatVector})
	c := q.Append("apple", nil)

	require.Equal(t, []int{1, 2, 3}, []int{a.SequenceID, b.SequenceID, c.SequenceID})
	require.Equal(t, 3, q.Len())
	require.True(t, b.HasImage())
	require.Equal(t, board.FormatVector, b.Format)
	require.False(t, c.HasImage())
}

func TestClearEmptiesAndRestarts(t *testing.T) {
	var q Queue
	q.Append("one", nil)
	q.Append("two", nil)
	q.Clear()
	require.Empty(t, q.Snapshot())
	require.Equal(t, 0, q.Len())

	it := q.Append("again", nil)
	require.Equal(t, 1, it.SequenceID)

	q.Clear()
	q.Clear()
	require.Empty(t, q.Snapshot())
}

func TestSnapshotIsDetached(t *testing.T) {
	var q Queue
	q.Append("hello", nil)
	snap := q.Snapshot()
	snap[0].Label = "changed"
	q.Append("world", nil)

	require.Len(t, snap, 1)
	require.Equal(t, "hello", q.Snapshot()[0].Label)
}
