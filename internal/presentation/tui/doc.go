// Package tui draws the simulation on a terminal: grid frames with the cell legend,
// the startup banner, and the completion report.
package tui
