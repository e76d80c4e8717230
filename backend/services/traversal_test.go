// ABOUTME: Tests for serpentine grid traversal
// ABOUTME: Verifies visiting order per corner and pattern plus coverage and adjacency

package services

import (
	"fmt"
	"testing"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(pairs ...int) []models.Cell {
	out := make([]models.Cell, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.Cell{Row: pairs[i], Col: pairs[i+1]})
	}
	return out
}

func TestSerpentinePath_Order(t *testing.T) {
	tests := []struct {
		name    string
		corner  models.StartCorner
		pattern models.WiringPattern
		rows    int
		cols    int
		want    []models.Cell
	}{
		{
			name: "top left vertical", corner: models.TopLeft, pattern: models.PatternVertical, rows: 3, cols: 3,
			want: cells(0, 0, 1, 0, 2, 0, 2, 1, 1, 1, 0, 1, 0, 2, 1, 2, 2, 2),
		},
		{
			name: "top right vertical", corner: models.TopRight, pattern: models.PatternVertical, rows: 3, cols: 3,
			want: cells(0, 2, 1, 2, 2, 2, 2, 1, 1, 1, 0, 1, 0, 0, 1, 0, 2, 0),
		},
		{
			name: "bottom left vertical", corner: models.BottomLeft, pattern: models.PatternVertical, rows: 3, cols: 3,
			want: cells(2, 0, 1, 0, 0, 0, 0, 1, 1, 1, 2, 1, 2, 2, 1, 2, 0, 2),
		},
		{
			name: "bottom right vertical", corner: models.BottomRight, pattern: models.PatternVertical, rows: 2, cols: 2,
			want: cells(1, 1, 0, 1, 0, 0, 1, 0),
		},
		{
			name: "top left horizontal", corner: models.TopLeft, pattern: models.PatternHorizontal, rows: 2, cols: 3,
			want: cells(0, 0, 0, 1, 0, 2, 1, 2, 1, 1, 1, 0),
		},
		{
			name: "top right horizontal", corner: models.TopRight, pattern: models.PatternHorizontal, rows: 2, cols: 3,
			want: cells(0, 2, 0, 1, 0, 0, 1, 0, 1, 1, 1, 2),
		},
		{
			name: "bottom right horizontal", corner: models.BottomRight, pattern: models.PatternHorizontal, rows: 2, cols: 3,
			want: cells(1, 2, 1, 1, 1, 0, 0, 0, 0, 1, 0, 2),
		},
		{
			name: "single row vertical", corner: models.TopLeft, pattern: models.PatternVertical, rows: 1, cols: 3,
			want: cells(0, 0, 0, 1, 0, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SerpentinePath(tt.corner, tt.pattern, tt.rows, tt.cols))
		})
	}
}

func TestSerpentinePath_EmptyGrid(t *testing.T) {
	assert.Empty(t, SerpentinePath(models.TopLeft, models.PatternVertical, 0, 5))
	assert.Empty(t, SerpentinePath(models.TopLeft, models.PatternHorizontal, 5, 0))
	assert.NotNil(t, SerpentinePath(models.TopLeft, models.PatternVertical, -1, -1))
}

func TestSerpentinePath_CoversGridWithAdjacentSteps(t *testing.T) {
	const rows, cols = 4, 5
	first := map[models.StartCorner]models.Cell{
		models.TopLeft:     {Row: 0, Col: 0},
		models.TopRight:    {Row: 0, Col: cols - 1},
		models.BottomLeft:  {Row: rows - 1, Col: 0},
		models.BottomRight: {Row: rows - 1, Col: cols - 1},
	}

	for _, corner := range models.StartCorners {
		for _, pattern := range []models.WiringPattern{models.PatternVertical, models.PatternHorizontal} {
			t.Run(fmt.Sprintf("%s/%s", corner, pattern), func(t *testing.T) {
				path := SerpentinePath(corner, pattern, rows, cols)
				require.Len(t, path, rows*cols)
				assert.Equal(t, first[corner], path[0])

				seen := make(map[models.Cell]bool, len(path))
				for i, cell := range path {
					assert.False(t, seen[cell], "cell %v visited twice", cell)
					seen[cell] = true
					if i > 0 {
						assert.True(t, path[i-1].Adjacent(cell), "step %d: %v -> %v", i, path[i-1], cell)
					}
				}
			})
		}
	}
}
