package board

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleBoard() *Board {
	return &Board{
		Name: "home",
		Grid: Grid{
			Rows:    2,
			Columns: 2,
			Order: [][]string{
				{"1", "2"},
				{"", "3"},
			},
		},
		Buttons: []Button{
			{ID: "1", Label: "I want", ImageID: "img1"},
			{ID: "2", Label: "food", LoadBoard: "board_food"},
			{ID: "3", Label: "yes"},
		},
		Images: []Image{
			{ID: "img1", URL: "https://example.com/want.svg"},
		},
	}
}

func TestValidateAcceptsConsistentBoard(t *testing.T) {
	b := sampleBoard()
	require.NoError(t, b.Validate())

	act, ok := b.Activation("1")
	require.True(t, ok)
	speak, isSpeak := act.(Speak)
	require.True(t, isSpeak)
	require.Equal(t, "I want", speak.Label)
	require.NotNil(t, speak.Image)
	require.Equal(t, FormatVector, speak.Image.Format)

	act, ok = b.Activation("2")
	require.True(t, ok)
	require.Equal(t, Navigate{Target: "board_food"}, act)

	act, ok = b.Activation("3")
	require.True(t, ok)
	require.Nil(t, act.(Speak).Image)
}

func TestValidateFailureDropsEarlierActivations(t *testing.T) {
	b := sampleBoard()
	require.NoError(t, b.Validate())
	_, ok := b.Activation("1")
	require.True(t, ok)

	b.Grid.Order[0][0] = "ghost"
	require.ErrorIs(t, b.Validate(), ErrDataConsistency)
	_, ok = b.Activation("1")
	require.False(t, ok)
	_, ok = b.Button("1")
	require.True(t, ok, "lookups fall back to a scan")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(b *Board)
		want   string
	}{
		{"row count", func(b *Board) { b.Grid.Rows = 3 }, "declares 3 rows"},
		{"column count", func(b *Board) { b.Grid.Order[1] = []string{"3"} }, "row 1 has 1 cells"},
		{"zero columns", func(b *Board) { b.Grid.Columns = 0 }, "positive dimensions"},
		{"unknown button", func(b *Board) { b.Grid.Order[1][0] = "99" }, `unknown button "99"`},
		{"unknown image", func(b *Board) { b.Buttons[2].ImageID = "nope" }, `unknown image "nope"`},
		{"duplicate button", func(b *Board) { b.Buttons = append(b.Buttons, Button{ID: "1", Label: "again"}) }, `duplicate button id "1"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := sampleBoard()
			tc.mutate(b)
			err := b.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrDataConsistency))
			var ce *ConsistencyError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, "home", ce.Board)
			require.Contains(t, err.Error(), tc.want)
			_, ok := b.Activation("1")
			require.False(t, ok, "rejected board must not expose activations")
		})
	}
}

func TestResolveImage(t *testing.T) {
	b := sampleBoard()

	img, err := ResolveImage(Button{ID: "x"}, b)
	require.NoError(t, err)
	require.Nil(t, img)

	img, err = ResolveImage(Button{ID: "x", ImageID: "img1"}, b)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/want.svg", img.URL)
	require.Equal(t, FormatVector, img.Format)

	_, err = ResolveImage(Button{ID: "x", ImageID: "missing"}, b)
	require.ErrorIs(t, err, ErrDataConsistency)
}

func TestImageFormat(t *testing.T) {
	cases := map[string]ImageFormat{
		"https://example.com/a.svg":         FormatVector,
		"https://example.com/a.SVG?v=2":     FormatVector,
		"https://example.com/a.png":         FormatRaster,
		"file:///symbols/apple.jpeg":        FormatRaster,
		"symbols/banana.svg":                FormatVector,
		"https://example.com/svg/apple.png": FormatRaster,
	}
	for u, want := range cases {
		require.Equal(t, want, Image{URL: u}.Format(), u)
	}
}

func TestDecodeNumericIDsAndLinks(t *testing.T) {
	data := `{
  "id": "1_235",
  "grid": {"rows": 1, "columns": 3, "order": [[1, null, "b2"]]},
  "buttons": [
    {"id": 1, "label": "hello", "image_id": 7},
    {"id": "b2", "label": "animals", "load_board": {"id": "1_300", "name": "Animals"}}
  ],
  "images": [{"id": 7, "url": "https://example.com/hello.png"}]
}`
	b, err := Decode(strings.NewReader(data), "board_1_235")
	require.NoError(t, err)
	require.Equal(t, "board_1_235", b.Name)
	require.Equal(t, "1_235", b.ID)
	require.Equal(t, [][]string{{"1", "", "b2"}}, b.Grid.Order)
	require.Equal(t, "7", b.Buttons[0].ImageID)
	require.Equal(t, "board_1_300", b.Buttons[1].LoadBoard)
	require.NoError(t, b.Validate())
}

func TestEncodeDecodeKeepsEmptyCellsAndLinks(t *testing.T) {
	b := sampleBoard()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b))
	require.Contains(t, buf.String(), "null")

	got, err := Decode(&buf, "")
	require.NoError(t, err)
	require.Equal(t, b.Name, got.Name)
	require.Equal(t, b.Grid.Order, got.Grid.Order)
	require.Equal(t, "board_food", got.Buttons[1].LoadBoard)
}

func TestEncodeWritesLinkIDs(t *testing.T) {
	b := sampleBoard()
	b.Buttons = append(b.Buttons, Button{ID: "4", Label: "self", LoadBoard: "home"})
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b))
	out := buf.String()
	require.Contains(t, out, `"id": "food"`)
	require.Contains(t, out, `"name": "home"`)

	got, err := Decode(strings.NewReader(out), "")
	require.NoError(t, err)
	require.Equal(t, "board_food", got.Buttons[1].LoadBoard)
	require.Equal(t, "home", got.Buttons[3].LoadBoard)
}

func TestLinks(t *testing.T) {
	b := sampleBoard()
	b.Buttons = append(b.Buttons, Button{ID: "4", Label: "more food", LoadBoard: "board_food"}, Button{ID: "5", Label: "self", LoadBoard: "home"})
	require.Equal(t, []string{"board_food", "home"}, b.Links())
}

func TestLinkedBoardName(t *testing.T) {
	require.Equal(t, "board_12", LinkedBoardName("12", ""))
	require.Equal(t, "board_1_300", LinkedBoardName("1_300", "Animals"))
	require.Equal(t, "animals", LinkedBoardName("", "animals"))
	require.Equal(t, "", LinkedBoardName(" ", ""))
}
