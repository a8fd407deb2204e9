package scenario

import (
	"strings"

	"github.com/ezrec/intcode/cpu"
)

const (
	COLOUR_BLACK = int64(0)
	COLOUR_WHITE = int64(1)

	TURN_LEFT  = int64(0)
	TURN_RIGHT = int64(1)
)

// Hull is the set of panels painted by a robot.
type Hull struct {
	Panels map[Point]int64 // Panel colour, for every panel painted.
	Bounds Bounds          // Extent of the painted panels.
}

// Painted returns the number of panels painted at least once.
func (hull *Hull) Painted() int {
	return len(hull.Panels)
}

func (hull *Hull) paint(pt Point, colour int64) {
	hull.Panels[pt] = colour
	hull.Bounds.Extend(pt)
}

// String renders white panels as '#', with the highest row first.
func (hull *Hull) String() string {
	var rows []string
	for y := hull.Bounds.Max.Y; y >= hull.Bounds.Min.Y; y-- {
		var row strings.Builder
		for x := hull.Bounds.Min.X; x <= hull.Bounds.Max.X; x++ {
			if hull.Panels[Point{X: x, Y: y}] == COLOUR_WHITE {
				row.WriteByte('#')
			} else {
				row.WriteByte(' ')
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// Paint runs a painting robot until it halts. The robot starts at the
// origin facing up, on a panel of colour start. For every panel colour it
// reads, it outputs a colour to paint, then a turn, and moves forward one
// panel.
func Paint(memory []int64, start int64) (hull *Hull, err error) {
	hull = &Hull{Panels: map[Point]int64{}}

	var pos Point
	dir := Point{X: 0, Y: 1}
	hull.paint(pos, start)

	robot := cpu.NewCpu(memory)
	err = robot.Run()

	for err == nil {
		output := robot.DrainOutput()
		if len(output)%2 != 0 {
			err = ErrOutput(output)
			return
		}

		for n := 0; n < len(output); n += 2 {
			hull.paint(pos, output[n])
			switch output[n+1] {
			case TURN_LEFT:
				dir = Point{X: -dir.Y, Y: dir.X}
			case TURN_RIGHT:
				dir = Point{X: dir.Y, Y: -dir.X}
			default:
				err = ErrOutput(output[n : n+2])
				return
			}
			pos = pos.Add(dir)
		}

		if robot.State() == cpu.STATE_HALTED {
			break
		}

		err = robot.SupplyInput(hull.Panels[pos])
	}

	return
}
