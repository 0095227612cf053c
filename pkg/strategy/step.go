package strategy

import "github.com/aretw0/cleanerbot/pkg/robot"

// visit moves to (x, y) and cleans there. A blocked destination is skipped.
func visit(r *robot.Robot, x, y int) {
	if r.MoveTo(x, y) {
		r.CleanHere()
	}
}
