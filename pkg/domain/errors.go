package domain

import "errors"

// ErrInvalidDimensions is returned when a grid is created with a non-positive width or height.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// ErrOutOfRange is returned when a coordinate lies outside the grid.
var ErrOutOfRange = errors.New("coordinate out of range")

// ErrUnknownStrategy is returned when a strategy name is not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrRobotSpent is returned when a robot that already ran is asked to run again.
var ErrRobotSpent = errors.New("robot already completed its cleaning run")

// ErrInvalidScenario is returned when a scenario fails validation.
var ErrInvalidScenario = errors.New("invalid scenario")
