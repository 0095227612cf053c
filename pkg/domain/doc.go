/*
Package domain contains the core value types shared by the cleaning simulation.

It defines the state of a single grid cell, coordinates, the sentinel errors reported by
the grid, robot and scenario packages, and the lifecycle events a cleaning run emits.
This package is kept pure and free of external dependencies like I/O or rendering.

# Key Entities

  - CellState: Empty, Dirt, Obstacle or Cleaned.
  - Point: An (x, y) grid coordinate.
  - StepEvent: A robot moved, was blocked, or cleaned a cell.
  - LifecycleHooks: Callbacks observers register to follow a run (rendering, metrics, logs).
*/
package domain
