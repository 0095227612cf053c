/*
Package grid implements the rectangular cell store a cleaning robot works on.

A Grid has fixed dimensions and holds exactly one domain.CellState per cell. It is the
bounds authority: every query on a coordinate outside [0,width)×[0,height) answers false
instead of failing, and MarkCleaned outside the grid is a no-op.

Seeding (MarkDirt, MarkObstacle) happens before a run and validates coordinates,
returning an error wrapping domain.ErrOutOfRange.
*/
package grid
