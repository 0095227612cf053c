/*
Package scenario describes and loads the layouts the simulator cleans.

A scenario file is YAML:

	name: office
	width: 10
	height: 6
	strategy: spiral
	dirt:
	  - [5, 3]
	  - {x: 8, y: 2}
	obstacles:
	  - [2, 4]
	  - [7, 1]

Validate reports every problem at once as an AggregateError; Build turns a valid
scenario into a seeded grid.
*/
package scenario
