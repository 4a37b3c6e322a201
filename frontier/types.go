package frontier

import (
	"errors"
	"fmt"
)

// ErrFull is returned when a push would exceed the container's Limit.
var ErrFull = errors.New("frontier: limit reached")

// defaultCapacity is the initial backing size when callers pass capacity < 1.
const defaultCapacity = 16

// Coord is a pixel coordinate: U is the column, V is the row.
type Coord struct {
	U, V int
}

// C is shorthand for Coord{U: u, V: v}.
func C(u, v int) Coord {
	return Coord{U: u, V: v}
}

// Right returns the neighbour at (U+1, V).
func (c Coord) Right() Coord { return Coord{c.U + 1, c.V} }

// Down returns the neighbour at (U, V+1).
func (c Coord) Down() Coord { return Coord{c.U, c.V + 1} }

// Up returns the neighbour at (U, V-1).
func (c Coord) Up() Coord { return Coord{c.U, c.V - 1} }

// Left returns the neighbour at (U-1, V).
func (c Coord) Left() Coord { return Coord{c.U - 1, c.V} }

// Neighbors4 returns the four edge-adjacent neighbours in the canonical
// exploration order: right, down, up, left.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{c.Right(), c.Down(), c.Up(), c.Left()}
}

// String formats the coordinate as "(u,v)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.U, c.V)
}
