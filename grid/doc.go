// Package grid provides the fixed-size boolean cell rectangle shared by the
// editing grid, shapes, the board and the preview overlay.
//
// A Grid is a value. Toggle, WithActive and Clone return new grids and never
// write into the receiver, so any Grid handed out earlier (a rendered frame,
// a memoized overlay) stays valid after later edits.
package grid
