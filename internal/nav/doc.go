// Package nav implements the board navigation state machine.
//
// A Controller starts unloaded. Loading a board is split into three steps so
// a UI loop can run the slow part elsewhere: Request issues a ticket, Fetch
// talks to the store, and Commit installs the result on the controller's own
// goroutine. Each Request supersedes the previous one; a late result for an
// older ticket is dropped.
//
// Pressing a speech button appends to the utterance queue, hands the label to
// the Dispatcher and, when the current board is not home, requests a load of
// the home board. Pressing a navigation button only requests the target
// board.
package nav
