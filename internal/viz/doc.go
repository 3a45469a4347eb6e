// Package viz plays a rendered Kuramoto animation in the terminal.
//
// The preview uses the Bubble Tea framework:
//
//   - [Model]: frame playback, order parameter panel, GIF export
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - Theme selection with 4 built-in colour schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	[ ]   - Step one frame back/forward
//	R     - Restart from frame 0
//	T     - Cycle color themes
//	G     - Export the animation as GIF
//	?     - Show help overlay
//	Q     - Quit
package viz
