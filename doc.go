/*
Package cleanerbot simulates a cleaning robot working through a grid of dirt and obstacles.

A rectangular grid holds one state per cell (empty, dirt, obstacle, cleaned). A robot
bound to the grid moves one cell at a time and cleans dirt where it stands, driven by a
deterministic traversal strategy. The run is observable through lifecycle hooks, which is
how the console renderer, the metrics collector and the debug logs follow it.

# Concept

The grid is the authority on bounds and cell contents. The robot is the only thing a
strategy touches: it refuses moves off the grid or into obstacles and reports them as a
plain false, never as an error. Strategies are stateless and own no data between runs.

# Strategies

  - perimeter: one pass around the outer ring, each sweep stopping at an edge or obstacle.
  - spiral: concentric rings, stopping as soon as no dirt is left.
  - zigzag: row-by-row sweep of the whole grid.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/cleanerbot"
		"github.com/aretw0/cleanerbot/pkg/scenario"
		"github.com/aretw0/cleanerbot/pkg/strategy"
	)

	func main() {
		sim, err := cleanerbot.FromScenario(scenario.Default(),
			cleanerbot.WithStrategy(strategy.Spiral{}),
		)
		if err != nil {
			log.Fatal(err)
		}

		report, err := sim.Run(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(report.DirtRemaining)
	}

The cleanerbot command wraps this with an animated console display.
*/
package cleanerbot
