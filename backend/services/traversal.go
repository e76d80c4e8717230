// ABOUTME: Serpentine traversal over the cabinet grid
// ABOUTME: Produces the daisy-chain visiting order for a start corner and orientation

package services

import "github.com/markalston/led-wall-calculator/backend/models"

// SerpentinePath returns every cell of a rows x cols grid exactly once, starting at
// corner and reversing direction on each successive column (vertical) or row
// (horizontal). Returns an empty slice when either dimension is not positive.
func SerpentinePath(corner models.StartCorner, pattern models.WiringPattern, rows, cols int) []models.Cell {
	if rows <= 0 || cols <= 0 {
		return []models.Cell{}
	}

	path := make([]models.Cell, 0, rows*cols)
	if pattern == models.PatternHorizontal {
		for i, row := range outerOrder(rows, corner.IsBottom()) {
			// Left corners sweep right on even passes; right corners sweep left
			reverse := corner.IsRight() == (i%2 == 0)
			for _, col := range innerOrder(cols, reverse) {
				path = append(path, models.Cell{Row: row, Col: col})
			}
		}
		return path
	}

	for i, col := range outerOrder(cols, corner.IsRight()) {
		// Top corners sweep down on even passes; bottom corners sweep up
		reverse := corner.IsBottom() == (i%2 == 0)
		for _, row := range innerOrder(rows, reverse) {
			path = append(path, models.Cell{Row: row, Col: col})
		}
	}
	return path
}

// outerOrder lists 0..n-1, reversed when the start corner sits on the far edge
func outerOrder(n int, reverse bool) []int {
	return innerOrder(n, reverse)
}

func innerOrder(n int, reverse bool) []int {
	idx := make([]int, n)
	for i := range idx {
		if reverse {
			idx[i] = n - 1 - i
		} else {
			idx[i] = i
		}
	}
	return idx
}
