// ABOUTME: Data models for cabinet grid traversal, grouping, and wiring plans
// ABOUTME: Coordinates, traversal parameters, and render-agnostic diagram output

package models

// Cell addresses one cabinet; row 0 is the top row, col 0 the leftmost column
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Adjacent reports whether two cells share an edge (Manhattan distance 1)
func (c Cell) Adjacent(o Cell) bool {
	dr := c.Row - o.Row
	dc := c.Col - o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// StartCorner is the cabinet where cabling begins
type StartCorner string

const (
	TopLeft     StartCorner = "topLeft"
	TopRight    StartCorner = "topRight"
	BottomLeft  StartCorner = "bottomLeft"
	BottomRight StartCorner = "bottomRight"
)

// StartCorners lists the corners in display order
var StartCorners = []StartCorner{TopLeft, TopRight, BottomLeft, BottomRight}

// ParseStartCorner normalizes a corner name, defaulting to topLeft
func ParseStartCorner(s string) StartCorner {
	for _, c := range StartCorners {
		if string(c) == s {
			return c
		}
	}
	return TopLeft
}

// IsRight reports whether the corner is on the right edge
func (c StartCorner) IsRight() bool { return c == TopRight || c == BottomRight }

// IsBottom reports whether the corner is on the bottom edge
func (c StartCorner) IsBottom() bool { return c == BottomLeft || c == BottomRight }

// WiringPattern is the orientation of the serpentine cable run
type WiringPattern string

const (
	PatternVertical   WiringPattern = "vertical"
	PatternHorizontal WiringPattern = "horizontal"
)

// ParseWiringPattern normalizes a pattern name, defaulting to vertical
func ParseWiringPattern(s string) WiringPattern {
	if s == string(PatternHorizontal) {
		return PatternHorizontal
	}
	return PatternVertical
}

// View selects the data-port or power-circuit layer of a diagram
type View string

const (
	ViewData  View = "data"
	ViewPower View = "power"
)

// ParseView normalizes a view name; ok is false for unknown names
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewData:
		return ViewData, true
	case ViewPower:
		return ViewPower, true
	}
	return ViewData, false
}

// LabelPrefix is "P" for data ports and "B" for breakers
func (v View) LabelPrefix() string {
	if v == ViewPower {
		return "B"
	}
	return "P"
}

// GroupingStrategy names how cabinets are partitioned into groups
type GroupingStrategy string

const (
	StrategyNone        GroupingStrategy = "none"
	StrategyRectangular GroupingStrategy = "rectangular"
	StrategyContiguous  GroupingStrategy = "contiguous"
)

// PlanStatus is the outcome of building an automatic wiring plan
type PlanStatus string

const (
	PlanOK       PlanStatus = "ok"
	PlanEmpty    PlanStatus = "empty"     // grid has no cabinets
	PlanNoPlan   PlanStatus = "no_plan"   // capacity cannot hold a single cabinet
	PlanTooLarge PlanStatus = "too_large" // above the render threshold
)

// WiringOptions selects traversal and visibility for an automatic plan
type WiringOptions struct {
	StartCorner  StartCorner   `json:"start_corner"`
	Pattern      WiringPattern `json:"pattern"`
	View         View          `json:"view"`
	BreakerAmps  int           `json:"breaker_amps,omitempty"`  // 0 selects the highest-rated breaker
	HiddenGroups []int         `json:"hidden_groups,omitempty"` // zero-based group indices
	MaxCabinets  int           `json:"-"`
}

// GroupSummary describes one port or circuit group of a plan
type GroupSummary struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Start   Cell   `json:"start"`
	Members int    `json:"members"`
	Visible bool   `json:"visible"`
}

// Segment joins two consecutively wired cabinets of one group
type Segment struct {
	Group int  `json:"group"`
	From  Cell `json:"from"`
	To    Cell `json:"to"`
}

// WiringPlan is the render-agnostic output of automatic grouping
type WiringPlan struct {
	Status      PlanStatus       `json:"status"`
	View        View             `json:"view"`
	StartCorner StartCorner      `json:"start_corner"`
	Pattern     WiringPattern    `json:"pattern"`
	Rows        int              `json:"rows"`
	Cols        int              `json:"cols"`
	Capacity    int              `json:"capacity"`
	BreakerAmps int              `json:"breaker_amps,omitempty"`
	Strategy    GroupingStrategy `json:"strategy"`
	TotalGroups int              `json:"total_groups"`
	Path        []Cell           `json:"path"`
	Groups      []GroupSummary   `json:"groups"`
	Segments    []Segment        `json:"segments"`
}

// PathState classifies a manual path against its capacity
type PathState string

const (
	PathEmpty    PathState = "empty"
	PathBuilding PathState = "building"
	PathFull     PathState = "full"
)

// ToggleOutcome reports what a toggle did to the active path
type ToggleOutcome string

const (
	ToggleAppended ToggleOutcome = "appended"
	ToggleRemoved  ToggleOutcome = "removed"
	ToggleRejected ToggleOutcome = "rejected"
)

// Path is one user-drawn cable run
type Path struct {
	ID    int    `json:"id"`
	Cells []Cell `json:"cells"`
}

// Polyline is a manual path ready to draw through cabinet centers
type Polyline struct {
	PathID int       `json:"path_id"`
	Label  string    `json:"label"`
	State  PathState `json:"state"`
	Cells  []Cell    `json:"cells"`
}
