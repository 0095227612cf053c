/*
Package strategy provides the deterministic traversal patterns a robot can run.

  - PerimeterHugger: one pass around the outer ring, stopping each sweep at an edge or obstacle.
  - Spiral: concentric rings with shrinking bounds, stopping as soon as no dirt remains.
  - Zigzag: row-by-row boustrophedon sweep of the whole grid.

Strategies hold no state; everything a run needs lives in local variables of Clean.
Each one checks the context between unit steps, so a cancelled run stops promptly.
*/
package strategy
