package scenario

import (
	"strings"

	"github.com/ezrec/intcode/cpu"
)

// scaffold is the set of glyphs that show scaffolding, including the robot
// standing on it.
const scaffold = "#<>^v"

// View is a camera image, one string per row.
type View struct {
	Rows []string
}

func (view *View) at(row, col int) byte {
	if row < 0 || row >= len(view.Rows) || col < 0 || col >= len(view.Rows[row]) {
		return '.'
	}
	return view.Rows[row][col]
}

// Intersections returns the scaffold locations with scaffold on all four
// sides.
func (view *View) Intersections() (points []Point) {
	for row, line := range view.Rows {
		for col := range len(line) {
			cross := true
			for _, pt := range []Point{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				if !strings.ContainsRune(scaffold, rune(view.at(row+pt.Y, col+pt.X))) {
					cross = false
					break
				}
			}
			if cross {
				points = append(points, Point{X: col, Y: row})
			}
		}
	}
	return
}

// Alignment returns the sum of row times column over all intersections.
func (view *View) Alignment() (sum int) {
	for _, pt := range view.Intersections() {
		sum += pt.X * pt.Y
	}
	return
}

func (view *View) String() string {
	return strings.Join(view.Rows, "\n")
}

// Camera runs the camera program until it halts, and returns the image it
// printed.
func Camera(memory []int64) (view *View, err error) {
	camera := cpu.NewCpu(memory)
	err = camera.Run()
	if err != nil {
		return
	}

	output := camera.DrainOutput()
	text := make([]byte, len(output))
	for n, value := range output {
		if value < 0 || value > 0x7f {
			err = ErrOutput(output[n : n+1])
			return
		}
		text[n] = byte(value)
	}

	view = &View{}
	for _, row := range strings.Split(string(text), "\n") {
		if len(row) != 0 {
			view.Rows = append(view.Rows, row)
		}
	}

	return
}
