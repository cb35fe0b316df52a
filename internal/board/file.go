package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// fileID accepts ids written either as JSON strings or numbers.
type fileID string

func (id *fileID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = fileID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = fileID(n.String())
	return nil
}

func (id fileID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}

type fileBoard struct {
	ID      fileID       `json:"id"`
	Name    string       `json:"name,omitempty"`
	Grid    fileGrid     `json:"grid"`
	Buttons []fileButton `json:"buttons"`
	Images  []fileImage  `json:"images"`
}

type fileGrid struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Order   [][]fileID `json:"order"`
}

type fileButton struct {
	ID        fileID         `json:"id"`
	Label     string         `json:"label"`
	ImageID   fileID         `json:"image_id,omitempty"`
	LoadBoard *fileLoadBoard `json:"load_board,omitempty"`
}

type fileLoadBoard struct {
	ID   fileID `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type fileImage struct {
	ID  fileID `json:"id"`
	URL string `json:"url"`
}

const linkPrefix = "board_"

// LinkedBoardName maps a load_board reference to a board name. The id wins
// and is prefixed with "board_"; name is a display label in most files and
// is used only when there is no id.
func LinkedBoardName(id, name string) string {
	if id = strings.TrimSpace(id); id != "" {
		return linkPrefix + id
	}
	return strings.TrimSpace(name)
}

// linkRef is the inverse of LinkedBoardName.
func linkRef(target string) *fileLoadBoard {
	if id, ok := strings.CutPrefix(target, linkPrefix); ok && id != "" {
		return &fileLoadBoard{ID: fileID(id)}
	}
	return &fileLoadBoard{Name: target}
}

// Decode reads a board file. fallbackName is used when the file carries no
// name, typically the file name without extension. The result is not
// validated.
func Decode(r io.Reader, fallbackName string) (*Board, error) {
	var fb fileBoard
	dec := json.NewDecoder(r)
	if err := dec.Decode(&fb); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	name := strings.TrimSpace(fb.Name)
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		return nil, fmt.Errorf("decode board: no name")
	}

	b := &Board{
		Name: name,
		ID:   string(fb.ID),
		Grid: Grid{Rows: fb.Grid.Rows, Columns: fb.Grid.Columns},
	}
	b.Grid.Order = make([][]string, len(fb.Grid.Order))
	for r, row := range fb.Grid.Order {
		cells := make([]string, len(row))
		for c, id := range row {
			cells[c] = string(id)
		}
		b.Grid.Order[r] = cells
	}
	for _, fbtn := range fb.Buttons {
		btn := Button{ID: string(fbtn.ID), Label: fbtn.Label, ImageID: string(fbtn.ImageID)}
		if fbtn.LoadBoard != nil {
			btn.LoadBoard = LinkedBoardName(string(fbtn.LoadBoard.ID), fbtn.LoadBoard.Name)
		}
		b.Buttons = append(b.Buttons, btn)
	}
	for _, fimg := range fb.Images {
		b.Images = append(b.Images, Image{ID: string(fimg.ID), URL: fimg.URL})
	}
	return b, nil
}

// Encode writes a board in the file format Decode reads.
func Encode(w io.Writer, b *Board) error {
	fb := fileBoard{
		ID:   fileID(b.ID),
		Name: b.Name,
		Grid: fileGrid{Rows: b.Grid.Rows, Columns: b.Grid.Columns},
	}
	fb.Grid.Order = make([][]fileID, len(b.Grid.Order))
	for r, row := range b.Grid.Order {
		cells := make([]fileID, len(row))
		for c, id := range row {
			cells[c] = fileID(id)
		}
		fb.Grid.Order[r] = cells
	}
	for _, btn := range b.Buttons {
		fbtn := fileButton{ID: fileID(btn.ID), Label: btn.Label, ImageID: fileID(btn.ImageID)}
		if btn.LoadBoard != "" {
			fbtn.LoadBoard = linkRef(btn.LoadBoard)
		}
		fb.Buttons = append(fb.Buttons, fbtn)
	}
	for _, img := range b.Images {
		fb.Images = append(fb.Images, fileImage{ID: fileID(img.ID), URL: img.URL})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fb)
}
