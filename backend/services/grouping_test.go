// ABOUTME: Tests for cabinet grouping
// ABOUTME: Verifies strategy selection, group indices, start cells, and the partition property

package services

import (
	"fmt"
	"testing"

	"github.com/markalston/led-wall-calculator/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrouping_Strategy(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pattern  models.WiringPattern
		rows     int
		cols     int
		want     models.GroupingStrategy
	}{
		{"whole columns", 3, models.PatternVertical, 3, 4, models.StrategyRectangular},
		{"two columns", 6, models.PatternVertical, 3, 4, models.StrategyRectangular},
		{"partial column", 4, models.PatternVertical, 3, 4, models.StrategyContiguous},
		{"whole rows", 8, models.PatternHorizontal, 3, 4, models.StrategyRectangular},
		{"partial row", 6, models.PatternHorizontal, 3, 4, models.StrategyContiguous},
		{"less than a column", 2, models.PatternVertical, 3, 4, models.StrategyContiguous},
		{"zero capacity", 0, models.PatternVertical, 3, 4, models.StrategyNone},
		{"negative capacity", -5, models.PatternVertical, 3, 4, models.StrategyNone},
		{"empty grid", 4, models.PatternVertical, 0, 4, models.StrategyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrouping(tt.capacity, models.TopLeft, tt.pattern, tt.rows, tt.cols)
			assert.Equal(t, tt.want, g.Strategy())
			assert.Equal(t, tt.want != models.StrategyNone, g.Planned())
		})
	}
}

func TestGrouping_RectangularColumns(t *testing.T) {
	g := NewGrouping(6, models.TopLeft, models.PatternVertical, 3, 3)

	assert.Equal(t, 2, g.TotalGroups())
	for row := 0; row < 3; row++ {
		assert.Equal(t, 0, g.GroupIndex(row, 0))
		assert.Equal(t, 0, g.GroupIndex(row, 1))
		assert.Equal(t, 1, g.GroupIndex(row, 2))
	}

	start, ok := g.GroupStart(1)
	require.True(t, ok)
	assert.Equal(t, models.Cell{Row: 0, Col: 2}, start)
}

func TestGrouping_RectangularFromRightCorner(t *testing.T) {
	g := NewGrouping(3, models.TopRight, models.PatternVertical, 3, 3)

	assert.Equal(t, 0, g.GroupIndex(0, 2))
	assert.Equal(t, 1, g.GroupIndex(0, 1))
	assert.Equal(t, 2, g.GroupIndex(0, 0))
	assert.Equal(t, []models.Cell{{Row: 0, Col: 2}, {Row: 2, Col: 1}, {Row: 0, Col: 0}}, g.GroupStarts())
}

func TestGrouping_RectangularRowsFromBottom(t *testing.T) {
	g := NewGrouping(4, models.BottomLeft, models.PatternHorizontal, 3, 2)

	assert.Equal(t, models.StrategyRectangular, g.Strategy())
	assert.Equal(t, 0, g.GroupIndex(2, 0))
	assert.Equal(t, 0, g.GroupIndex(1, 1))
	assert.Equal(t, 1, g.GroupIndex(0, 0))
}

func TestGrouping_ContiguousFollowsTraversal(t *testing.T) {
	g := NewGrouping(4, models.TopLeft, models.PatternVertical, 3, 3)

	require.Equal(t, models.StrategyContiguous, g.Strategy())
	assert.Equal(t, 3, g.TotalGroups())
	assert.Equal(t, cells(0, 0, 1, 0, 2, 0, 2, 1), g.Members(0))
	assert.Equal(t, cells(1, 1, 0, 1, 0, 2, 1, 2), g.Members(1))
	assert.Equal(t, cells(2, 2), g.Members(2))
	assert.Equal(t, 1, g.MemberCount(2))

	start, ok := g.GroupStart(1)
	require.True(t, ok)
	assert.Equal(t, models.Cell{Row: 1, Col: 1}, start)
}

func TestGrouping_OutOfRange(t *testing.T) {
	g := NewGrouping(4, models.TopLeft, models.PatternVertical, 3, 3)

	assert.Equal(t, -1, g.GroupIndex(-1, 0))
	assert.Equal(t, -1, g.GroupIndex(3, 0))
	assert.Equal(t, -1, g.GroupIndex(0, 3))

	_, ok := g.GroupStart(3)
	assert.False(t, ok)
	_, ok = g.GroupStart(-1)
	assert.False(t, ok)
	assert.Zero(t, g.MemberCount(7))
}

func TestGrouping_NoPlan(t *testing.T) {
	g := NewGrouping(0, models.TopLeft, models.PatternVertical, 3, 3)

	assert.False(t, g.Planned())
	assert.Zero(t, g.TotalGroups())
	assert.Equal(t, -1, g.GroupIndex(0, 0))
	assert.Empty(t, g.GroupStarts())
}

func TestGrouping_CapacityLargerThanWall(t *testing.T) {
	g := NewGrouping(100, models.TopLeft, models.PatternVertical, 2, 2)

	assert.Equal(t, models.StrategyRectangular, g.Strategy())
	assert.Equal(t, 1, g.TotalGroups())
	assert.Equal(t, 4, g.MemberCount(0))
}

func TestGrouping_PartitionsEveryCell(t *testing.T) {
	const rows, cols = 4, 5
	total := rows * cols

	for _, corner := range models.StartCorners {
		for _, pattern := range []models.WiringPattern{models.PatternVertical, models.PatternHorizontal} {
			for capacity := 1; capacity <= total+2; capacity++ {
				t.Run(fmt.Sprintf("%s/%s/%d", corner, pattern, capacity), func(t *testing.T) {
					g := NewGrouping(capacity, corner, pattern, rows, cols)
					groups := g.TotalGroups()
					require.Equal(t, (total+capacity-1)/capacity, groups)

					sizes := make([]int, groups)
					for r := 0; r < rows; r++ {
						for c := 0; c < cols; c++ {
							idx := g.GroupIndex(r, c)
							require.GreaterOrEqual(t, idx, 0)
							require.Less(t, idx, groups)
							sizes[idx]++
						}
					}

					sum := 0
					for i, n := range sizes {
						assert.LessOrEqual(t, n, capacity, "group %d", i)
						assert.Positive(t, n, "group %d", i)
						assert.Equal(t, n, g.MemberCount(i))
						sum += n
					}
					assert.Equal(t, total, sum)
				})
			}
		}
	}
}
