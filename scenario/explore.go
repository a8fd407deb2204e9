package scenario

import (
	"strings"

	"github.com/ezrec/intcode/cpu"
)

// Cell is the content of a maze location.
type Cell int64

const (
	CELL_WALL   = Cell(0)
	CELL_OPEN   = Cell(1)
	CELL_OXYGEN = Cell(2)
)

// Droid movement commands, and the step each takes.
var moves = []struct {
	Command int64
	Step    Point
}{
	{1, Point{X: 0, Y: 1}},  // north
	{2, Point{X: 0, Y: -1}}, // south
	{3, Point{X: -1, Y: 0}}, // west
	{4, Point{X: 1, Y: 0}},  // east
}

// Maze is the area mapped by a repair droid, relative to its start.
type Maze struct {
	Cells  map[Point]Cell
	Bounds Bounds
	Oxygen Point // Location of the oxygen system.
	Steps  int   // Fewest moves from the start to the oxygen system.
}

// Explore maps the whole maze reachable by a repair droid, searching
// breadth first with a copy of the droid for every open location.
func Explore(memory []int64) (maze *Maze, err error) {
	maze = &Maze{Cells: map[Point]Cell{{}: CELL_OPEN}}

	type visit struct {
		droid *cpu.Cpu
		pos   Point
		steps int
	}

	droid := cpu.NewCpu(memory)
	err = droid.Run()
	if err != nil {
		return
	}

	found := false
	queue := []visit{{droid: droid}}
	for len(queue) > 0 {
		here := queue[0]
		queue = queue[1:]

		for _, move := range moves {
			pos := here.pos.Add(move.Step)
			if _, seen := maze.Cells[pos]; seen {
				continue
			}

			next := here.droid.Clone()
			err = next.SupplyInput(move.Command)
			if err != nil {
				return
			}

			output := next.DrainOutput()
			if len(output) != 1 {
				err = ErrOutput(output)
				return
			}

			cell := Cell(output[0])
			switch cell {
			case CELL_WALL:
			case CELL_OPEN, CELL_OXYGEN:
				queue = append(queue, visit{droid: next, pos: pos, steps: here.steps + 1})
			default:
				err = ErrReply(output[0])
				return
			}

			maze.Cells[pos] = cell
			maze.Bounds.Extend(pos)

			if cell == CELL_OXYGEN && !found {
				found = true
				maze.Oxygen = pos
				maze.Steps = here.steps + 1
			}
		}
	}

	if !found {
		err = ErrNoOxygen
	}

	return
}

// FillTime returns the minutes for oxygen to spread from the oxygen system
// to every open location, one step per minute.
func (maze *Maze) FillTime() (minutes int) {
	depth := map[Point]int{maze.Oxygen: 0}
	queue := []Point{maze.Oxygen}
	for len(queue) > 0 {
		here := queue[0]
		queue = queue[1:]

		for _, move := range moves {
			pos := here.Add(move.Step)
			if _, seen := depth[pos]; seen {
				continue
			}
			if cell, ok := maze.Cells[pos]; !ok || cell == CELL_WALL {
				continue
			}
			depth[pos] = depth[here] + 1
			minutes = max(minutes, depth[pos])
			queue = append(queue, pos)
		}
	}

	return
}

// String renders the maze with the highest row first. Walls are '#', the
// start is 'D' and the oxygen system is 'O'.
func (maze *Maze) String() string {
	var rows []string
	for y := maze.Bounds.Max.Y; y >= maze.Bounds.Min.Y; y-- {
		var row strings.Builder
		for x := maze.Bounds.Min.X; x <= maze.Bounds.Max.X; x++ {
			pt := Point{X: x, Y: y}
			cell, ok := maze.Cells[pt]
			switch {
			case pt == Point{}:
				row.WriteByte('D')
			case !ok:
				row.WriteByte(' ')
			case cell == CELL_WALL:
				row.WriteByte('#')
			case cell == CELL_OXYGEN:
				row.WriteByte('O')
			default:
				row.WriteByte('.')
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
