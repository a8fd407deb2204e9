package scenario

import (
	"strings"

	"github.com/ezrec/intcode/cpu"
)

// Tile is the content of a screen cell.
type Tile int64

const (
	TILE_EMPTY  = Tile(0)
	TILE_WALL   = Tile(1)
	TILE_BLOCK  = Tile(2)
	TILE_PADDLE = Tile(3)
	TILE_BALL   = Tile(4)
)

var tileGlyph = map[Tile]byte{
	TILE_EMPTY:  ' ',
	TILE_WALL:   '#',
	TILE_BLOCK:  '*',
	TILE_PADDLE: '-',
	TILE_BALL:   'o',
}

// Screen is the display of an arcade cabinet.
type Screen struct {
	Tiles  map[Point]Tile
	Bounds Bounds
	Score  int64
	Ball   Point
	Paddle Point
}

// NewScreen returns a blank screen.
func NewScreen() *Screen {
	return &Screen{Tiles: map[Point]Tile{}}
}

// Update applies cabinet output to the screen.
// Output is a sequence of x, y, tile triples; x = -1, y = 0 sets the score.
func (scr *Screen) Update(output []int64) (err error) {
	if len(output)%3 != 0 {
		err = ErrOutput(output)
		return
	}

	for n := 0; n < len(output); n += 3 {
		x, y, value := output[n], output[n+1], output[n+2]
		if x == -1 && y == 0 {
			scr.Score = value
			continue
		}

		tile := Tile(value)
		if _, ok := tileGlyph[tile]; !ok {
			err = ErrOutput(output[n : n+3])
			return
		}

		pt := Point{X: int(x), Y: int(y)}
		scr.Tiles[pt] = tile
		scr.Bounds.Extend(pt)

		switch tile {
		case TILE_BALL:
			scr.Ball = pt
		case TILE_PADDLE:
			scr.Paddle = pt
		}
	}

	return
}

// Blocks returns the count of block tiles on screen.
func (scr *Screen) Blocks() (count int) {
	for _, tile := range scr.Tiles {
		if tile == TILE_BLOCK {
			count++
		}
	}
	return
}

func (scr *Screen) String() string {
	var rows []string
	for y := scr.Bounds.Min.Y; y <= scr.Bounds.Max.Y; y++ {
		var row strings.Builder
		for x := scr.Bounds.Min.X; x <= scr.Bounds.Max.X; x++ {
			row.WriteByte(tileGlyph[scr.Tiles[Point{X: x, Y: y}]])
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// Draw runs the cabinet until it halts or asks for the joystick, and
// returns the screen it drew.
func Draw(memory []int64) (scr *Screen, err error) {
	scr = NewScreen()

	cabinet := cpu.NewCpu(memory)
	err = cabinet.Run()
	if err != nil {
		return
	}

	err = scr.Update(cabinet.DrainOutput())
	return
}

// Play runs the cabinet in free play, steering the paddle towards the ball,
// until the game halts. It returns the final screen.
func Play(memory []int64) (scr *Screen, err error) {
	if len(memory) == 0 {
		err = ErrEmpty
		return
	}

	scr = NewScreen()

	cabinet := cpu.NewCpu(memory)
	err = cabinet.Memory.Write(0, 2)
	if err != nil {
		return
	}

	err = cabinet.Run()
	for err == nil {
		err = scr.Update(cabinet.DrainOutput())
		if err != nil || cabinet.State() == cpu.STATE_HALTED {
			break
		}

		err = cabinet.SupplyInput(sign(scr.Ball.X - scr.Paddle.X))
	}

	return
}
