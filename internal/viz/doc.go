// Package viz provides the terminal front end for the tree engine.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: the interactive application driving a [bst.Tree] at 60 ticks/s
//   - [Canvas]: braille pixel canvas with per-cell color and text labels
//   - [Surface]: adapter drawing engine frames onto a Canvas
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	0-9 -  - Type a value
//	Enter  - Insert or search the typed value
//	Tab    - Toggle insert/search mode
//	Esc    - Clear the input
//	Space  - Pause/Resume
//	T      - Cycle color themes
//	?      - Show help overlay
package viz
