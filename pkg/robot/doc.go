/*
Package robot implements the cleaning robot and the Strategy contract that drives it.

The Robot is the only point of contact between a Strategy and the grid. It tracks its
position, refuses moves that leave the grid or hit an obstacle, and cleans the cell it
stands on. Observers (rendering, metrics, logs) follow a run through domain.LifecycleHooks.

A Robot holds a non-owning reference to its grid; the caller creates the grid, seeds it,
and keeps it after the run. Each Robot performs exactly one run.

	g, _ := grid.New(10, 6)
	_ = g.MarkDirt(5, 3)

	r, err := robot.New(g, strategy.Spiral{})
	if err != nil {
		return err
	}
	if err := r.Run(ctx); err != nil {
		return err
	}
*/
package robot
