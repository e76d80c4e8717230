// ABOUTME: Builds automatic wiring plans for the data and power views
// ABOUTME: Combines derived capacities with serpentine grouping into render-agnostic diagrams

package services

import (
	"fmt"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// DefaultMaxDiagramCabinets bounds how many cabinets are traversed for a diagram
const DefaultMaxDiagramCabinets = 1000

// ExceedsCabinetLimit reports whether a rows×cols wall holds more than limit cabinets.
// The product is never formed, so walls whose cabinet count overflows int still report true.
func ExceedsCabinetLimit(rows, cols, limit int) bool {
	if rows <= 0 || cols <= 0 {
		return false
	}
	if limit <= 0 {
		return true
	}
	return rows > limit/cols
}

// ViewCapacity returns cabinets per group for a view: cabinets per port for data,
// cabinets per breaker for power. breakerAmps of 0 selects the highest-rated breaker.
// The returned amperage is the breaker actually used (0 for data).
func ViewCapacity(results models.CalculationResults, view models.View, breakerAmps int) (capacity, amps int) {
	if view != models.ViewPower {
		return results.CabinetsPerPort, 0
	}
	if breakerAmps > 0 {
		if n, ok := results.BreakerCapacity(breakerAmps); ok {
			return n, breakerAmps
		}
	}
	best, ok := results.HighestBreaker()
	if !ok {
		return 0, 0
	}
	return best.Count, best.Amps
}

// BuildWiringPlan groups the wall for one view and emits labels, start cells, and the
// segments joining consecutive cabinets of each visible group.
func BuildWiringPlan(cfg models.ScreenConfig, results models.CalculationResults, opts models.WiringOptions) models.WiringPlan {
	view := opts.View
	if view == "" {
		view = models.ViewData
	}
	corner := models.ParseStartCorner(string(opts.StartCorner))
	pattern := models.ParseWiringPattern(string(opts.Pattern))

	rows := max(cfg.CabinetsVertical, 0)
	cols := max(cfg.CabinetsHorizontal, 0)
	capacity, amps := ViewCapacity(results, view, opts.BreakerAmps)

	plan := models.WiringPlan{
		Status:      models.PlanOK,
		View:        view,
		StartCorner: corner,
		Pattern:     pattern,
		Rows:        rows,
		Cols:        cols,
		Capacity:    capacity,
		BreakerAmps: amps,
		Strategy:    models.StrategyNone,
		Path:        []models.Cell{},
		Groups:      []models.GroupSummary{},
		Segments:    []models.Segment{},
	}

	limit := opts.MaxCabinets
	if limit <= 0 {
		limit = DefaultMaxDiagramCabinets
	}

	switch {
	case rows == 0 || cols == 0:
		plan.Status = models.PlanEmpty
		return plan
	case ExceedsCabinetLimit(rows, cols, limit):
		plan.Status = models.PlanTooLarge
		return plan
	case capacity <= 0:
		plan.Status = models.PlanNoPlan
		return plan
	}

	grouping := NewGrouping(capacity, corner, pattern, rows, cols)
	plan.Strategy = grouping.Strategy()
	plan.TotalGroups = grouping.TotalGroups()
	plan.Path = grouping.Path()

	hidden := make(map[int]bool, len(opts.HiddenGroups))
	for _, g := range opts.HiddenGroups {
		hidden[g] = true
	}

	for i := 0; i < plan.TotalGroups; i++ {
		start, _ := grouping.GroupStart(i)
		plan.Groups = append(plan.Groups, models.GroupSummary{
			Index:   i,
			Label:   fmt.Sprintf("%s%d", view.LabelPrefix(), i+1),
			Start:   start,
			Members: grouping.MemberCount(i),
			Visible: !hidden[i],
		})
	}

	for i := 1; i < len(plan.Path); i++ {
		from, to := plan.Path[i-1], plan.Path[i]
		g := grouping.GroupIndex(from.Row, from.Col)
		if g < 0 || g != grouping.GroupIndex(to.Row, to.Col) || hidden[g] {
			continue
		}
		plan.Segments = append(plan.Segments, models.Segment{Group: g, From: from, To: to})
	}
	return plan
}

// GroupAt returns the group index of every cell as a rows x cols matrix, -1 for none
func GroupAt(plan models.WiringPlan) [][]int {
	out := make([][]int, plan.Rows)
	for r := range out {
		out[r] = make([]int, plan.Cols)
		for c := range out[r] {
			out[r][c] = -1
		}
	}
	if plan.Status != models.PlanOK {
		return out
	}
	grouping := NewGrouping(plan.Capacity, plan.StartCorner, plan.Pattern, plan.Rows, plan.Cols)
	for r := 0; r < plan.Rows; r++ {
		for c := 0; c < plan.Cols; c++ {
			out[r][c] = grouping.GroupIndex(r, c)
		}
	}
	return out
}
