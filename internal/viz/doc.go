// Package viz runs the simulation inside the terminal.
//
// The view is a Bubble Tea program drawing onto a Braille [Canvas], where
// each character cell holds a 2x4 block of dots. Bodies are filled discs in
// their palette color, live traces are single dots, and ghost traces from
// the previous run are drawn dimmed in red underneath.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	G     - Toggle ghost traces
//	Q     - Save traces and quit
package viz
