// ABOUTME: Partitions the cabinet grid into data-port or power-circuit groups
// ABOUTME: Chooses rectangular column/row blocks or contiguous serpentine runs

package services

import "github.com/markalston/led-wall-calculator/backend/models"

// Grouping assigns each cabinet to a zero-based group of at most Capacity cabinets.
// It is immutable once built.
type Grouping struct {
	capacity int
	corner   models.StartCorner
	pattern  models.WiringPattern
	rows     int
	cols     int
	strategy models.GroupingStrategy
	path     []models.Cell
	position map[models.Cell]int // traversal index of each cell
	starts   []models.Cell
	members  []int
}

// NewGrouping partitions a rows x cols grid for the given per-group capacity.
// Capacity that fills whole columns (vertical) or rows (horizontal) yields
// rectangular blocks; anything else follows the serpentine path.
func NewGrouping(capacity int, corner models.StartCorner, pattern models.WiringPattern, rows, cols int) *Grouping {
	g := &Grouping{
		capacity: capacity,
		corner:   corner,
		pattern:  pattern,
		rows:     max(rows, 0),
		cols:     max(cols, 0),
		strategy: models.StrategyNone,
	}
	g.path = SerpentinePath(corner, pattern, g.rows, g.cols)
	g.position = make(map[models.Cell]int, len(g.path))
	for i, cell := range g.path {
		g.position[cell] = i
	}

	if capacity <= 0 || len(g.path) == 0 {
		return g
	}

	g.strategy = models.StrategyContiguous
	if inner := g.innerLength(); inner > 0 && capacity%inner == 0 {
		g.strategy = models.StrategyRectangular
	}

	total := g.TotalGroups()
	g.starts = make([]models.Cell, total)
	g.members = make([]int, total)
	seen := make([]bool, total)
	for _, cell := range g.path {
		idx := g.GroupIndex(cell.Row, cell.Col)
		if idx < 0 || idx >= total {
			continue
		}
		if !seen[idx] {
			g.starts[idx] = cell
			seen[idx] = true
		}
		g.members[idx]++
	}
	return g
}

// innerLength is the number of cabinets in one serpentine pass
func (g *Grouping) innerLength() int {
	if g.pattern == models.PatternHorizontal {
		return g.cols
	}
	return g.rows
}

// Capacity returns the per-group cabinet limit
func (g *Grouping) Capacity() int { return g.capacity }

// Strategy returns the grouping strategy in effect
func (g *Grouping) Strategy() models.GroupingStrategy { return g.strategy }

// Planned reports whether any wiring plan exists; false means capacity cannot hold one cabinet
func (g *Grouping) Planned() bool { return g.strategy != models.StrategyNone }

// Path returns the traversal order the grouping was built on
func (g *Grouping) Path() []models.Cell { return g.path }

// TotalGroups returns ceil(cabinets / capacity), or 0 when no plan is possible
func (g *Grouping) TotalGroups() int {
	if g.capacity <= 0 {
		return 0
	}
	return ceilDiv(len(g.path), g.capacity)
}

// GroupIndex returns the group of (row, col), or -1 when the cell has no group
func (g *Grouping) GroupIndex(row, col int) int {
	if g.capacity <= 0 || row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return -1
	}

	switch g.strategy {
	case models.StrategyRectangular:
		if g.pattern == models.PatternHorizontal {
			rowsPerGroup := g.capacity / g.cols
			return orderedIndex(row, g.rows, g.corner.IsBottom()) / rowsPerGroup
		}
		colsPerGroup := g.capacity / g.rows
		return orderedIndex(col, g.cols, g.corner.IsRight()) / colsPerGroup
	case models.StrategyContiguous:
		pos, ok := g.position[models.Cell{Row: row, Col: col}]
		if !ok {
			return -1
		}
		return pos / g.capacity
	}
	return -1
}

// GroupStart returns the first cabinet of a group in traversal order
func (g *Grouping) GroupStart(index int) (models.Cell, bool) {
	if index < 0 || index >= len(g.starts) {
		return models.Cell{}, false
	}
	return g.starts[index], true
}

// GroupStarts returns the first cabinet of every group, indexed by group
func (g *Grouping) GroupStarts() []models.Cell {
	out := make([]models.Cell, len(g.starts))
	copy(out, g.starts)
	return out
}

// MemberCount returns how many cabinets belong to a group
func (g *Grouping) MemberCount(index int) int {
	if index < 0 || index >= len(g.members) {
		return 0
	}
	return g.members[index]
}

// Members returns the cabinets of a group in traversal order
func (g *Grouping) Members(index int) []models.Cell {
	var out []models.Cell
	for _, cell := range g.path {
		if g.GroupIndex(cell.Row, cell.Col) == index {
			out = append(out, cell)
		}
	}
	return out
}

// orderedIndex is i's position when 0..n-1 is walked from the start edge
func orderedIndex(i, n int, reverse bool) int {
	if reverse {
		return n - 1 - i
	}
	return i
}
