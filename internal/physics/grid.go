package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection in a wrapping world.
// Items are inserted by position and index, then nearby items are queried
// through a 3x3 cell neighborhood.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighborhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       [][]int // Item indices per cell, reused between frames
}

// NewSpatialGrid creates a spatial grid covering the given world dimensions.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil(worldW/cellSize)), 1)
	rows := max(int(math.Ceil(worldH/cellSize)), 1)
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(pos Vec2, index int) {
	col, row := g.posToCell(pos)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around pos, wrapping at world edges. Iteration stops when fn returns true.
// Indices are visited in cell order, not index order.
func (g *SpatialGrid) QueryAround(pos Vec2, fn func(index int) bool) {
	col, row := g.posToCell(pos)

	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			c := (col + dc + g.cols) % g.cols
			for _, item := range g.cells[r*g.cols+c] {
				if fn(item) {
					return
				}
			}
			// Tiny grids alias neighbors onto the same column
			if g.cols < 3 && dc >= g.cols-2 {
				break
			}
		}
		if g.rows < 3 && dr >= g.rows-2 {
			break
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates,
// clamping floating point strays to the valid range.
func (g *SpatialGrid) posToCell(pos Vec2) (col, row int) {
	col = min(max(int(pos.X*g.invCellSize), 0), g.cols-1)
	row = min(max(int(pos.Y*g.invCellSize), 0), g.rows-1)
	return col, row
}
