package repository

import "time"

// Board represents a boards row with its child rows.
type Board struct {
	Name       string
	ExternalID string
	ImportID   string
	Rows       int
	Columns    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Buttons    []Button
	Images     []Image
	Cells      []Cell
}

// Button represents a buttons row.
type Button struct {
	ID        string
	Position  int
	Label     string
	ImageID   *string
	LoadBoard *string
}

// Image represents an images row.
type Image struct {
	ID       string
	Position int
	URL      string
}

// Cell represents a grid_cells row. ButtonID is nil for an empty cell.
type Cell struct {
	Row      int
	Column   int
	ButtonID *string
}

// BoardSummary is a boards row without children.
type BoardSummary struct {
	Name      string
	Rows      int
	Columns   int
	Buttons   int
	UpdatedAt time.Time
}
