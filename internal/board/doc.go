// Package board holds the symbol-board data model: boards, their grid of
// button ids, buttons and images. Boards are validated once when loaded
// (grid shape, button and image references) and then treated as immutable.
// Validation also resolves each button into an Activation, either Speak or
// Navigate, so callers never inspect button shape at press time.
//
// Links between boards are plain names. Cycles, including a board linking to
// itself, are allowed; only one board is held at a time.
package board
