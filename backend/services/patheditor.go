// ABOUTME: State machine for hand-drawn cable paths over the cabinet grid
// ABOUTME: Tracks per-view path lists, the active path, and per-view capacity

package services

import (
	"fmt"
	"slices"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// PathEditor holds the manual paths of both views. It is not safe for concurrent use.
type PathEditor struct {
	rows     int
	cols     int
	view     models.View
	paths    map[models.View][]models.Path
	capacity map[models.View]int

	active     int
	activeView models.View
	hasActive  bool
}

// NewPathEditor creates an editor for a rows x cols grid with no paths and zero capacity
func NewPathEditor(rows, cols int) *PathEditor {
	return &PathEditor{
		rows:     max(rows, 0),
		cols:     max(cols, 0),
		view:     models.ViewData,
		paths:    map[models.View][]models.Path{models.ViewData: nil, models.ViewPower: nil},
		capacity: map[models.View]int{models.ViewData: 0, models.ViewPower: 0},
	}
}

// Rows returns the grid height
func (e *PathEditor) Rows() int { return e.rows }

// Cols returns the grid width
func (e *PathEditor) Cols() int { return e.cols }

// View returns the view currently being edited
func (e *PathEditor) View() models.View { return e.view }

// SetView switches the edited view. The active path is dropped when it belongs to the other view.
func (e *PathEditor) SetView(view models.View) {
	if view == e.view {
		return
	}
	e.view = view
	if e.hasActive && e.activeView != view {
		e.deselect()
	}
}

// AddPath appends an empty path to view, makes it active, and returns its id
func (e *PathEditor) AddPath(view models.View) int {
	id := 0
	for _, p := range e.paths[view] {
		id = max(id, p.ID+1)
	}
	e.paths[view] = append(e.paths[view], models.Path{ID: id, Cells: []models.Cell{}})
	e.view = view
	e.active, e.activeView, e.hasActive = id, view, true
	return id
}

// SelectPath makes an existing path active
func (e *PathEditor) SelectPath(view models.View, id int) bool {
	if e.find(view, id) < 0 {
		return false
	}
	e.view = view
	e.active, e.activeView, e.hasActive = id, view, true
	return true
}

// Active returns the active path's view and id
func (e *PathEditor) Active() (models.View, int, bool) {
	return e.activeView, e.active, e.hasActive
}

// NextPath activates the path after the active one in the current view, wrapping around
func (e *PathEditor) NextPath() bool {
	list := e.paths[e.view]
	if len(list) == 0 {
		return false
	}
	next := 0
	if e.hasActive && e.activeView == e.view {
		if i := e.find(e.view, e.active); i >= 0 {
			next = (i + 1) % len(list)
		}
	}
	return e.SelectPath(e.view, list[next].ID)
}

// Toggle adds or removes (row, col) on the active path.
// Only the tail can be removed; appends must extend the tail orthogonally,
// stay within capacity, and avoid cells claimed by another path of the same view.
func (e *PathEditor) Toggle(row, col int) models.ToggleOutcome {
	if !e.hasActive || !e.inGrid(row, col) {
		return models.ToggleRejected
	}
	idx := e.find(e.activeView, e.active)
	if idx < 0 {
		return models.ToggleRejected
	}

	list := e.paths[e.activeView]
	path := &list[idx]
	cell := models.Cell{Row: row, Col: col}

	if n := len(path.Cells); n > 0 && path.Cells[n-1] == cell {
		path.Cells = path.Cells[:n-1]
		return models.ToggleRemoved
	}
	if slices.Contains(path.Cells, cell) {
		return models.ToggleRejected
	}
	if owner, ok := e.UsedBy(e.activeView, row, col); ok && owner != path.ID {
		return models.ToggleRejected
	}
	if len(path.Cells) >= e.capacity[e.activeView] {
		return models.ToggleRejected
	}
	if n := len(path.Cells); n > 0 && !path.Cells[n-1].Adjacent(cell) {
		return models.ToggleRejected
	}

	path.Cells = append(path.Cells, cell)
	return models.ToggleAppended
}

// State classifies a path against its view's capacity
func (e *PathEditor) State(view models.View, id int) models.PathState {
	idx := e.find(view, id)
	if idx < 0 {
		return models.PathEmpty
	}
	return e.state(view, e.paths[view][idx])
}

func (e *PathEditor) state(view models.View, p models.Path) models.PathState {
	switch {
	case len(p.Cells) == 0:
		return models.PathEmpty
	case len(p.Cells) >= e.capacity[view]:
		return models.PathFull
	default:
		return models.PathBuilding
	}
}

// Clear removes every path of view and deselects the active path
func (e *PathEditor) Clear(view models.View) {
	e.paths[view] = nil
	e.deselect()
}

// SetLayout resizes the grid. Any change discards the paths of both views.
func (e *PathEditor) SetLayout(rows, cols int) {
	rows, cols = max(rows, 0), max(cols, 0)
	if rows == e.rows && cols == e.cols {
		return
	}
	e.rows, e.cols = rows, cols
	for view := range e.paths {
		e.paths[view] = nil
	}
	e.deselect()
}

// SetCapacity sets the maximum cabinets per path for view. Existing paths are kept.
func (e *PathEditor) SetCapacity(view models.View, n int) {
	e.capacity[view] = max(n, 0)
}

// Capacity returns the maximum cabinets per path for view
func (e *PathEditor) Capacity(view models.View) int {
	return e.capacity[view]
}

// Paths returns a copy of the paths of view in creation order
func (e *PathEditor) Paths(view models.View) []models.Path {
	out := make([]models.Path, 0, len(e.paths[view]))
	for _, p := range e.paths[view] {
		out = append(out, models.Path{ID: p.ID, Cells: slices.Clone(p.Cells)})
	}
	return out
}

// Polylines returns the paths of view labeled by list position (P1, P2... or B1, B2...)
func (e *PathEditor) Polylines(view models.View) []models.Polyline {
	out := make([]models.Polyline, 0, len(e.paths[view]))
	for i, p := range e.paths[view] {
		out = append(out, models.Polyline{
			PathID: p.ID,
			Label:  fmt.Sprintf("%s%d", view.LabelPrefix(), i+1),
			State:  e.state(view, p),
			Cells:  slices.Clone(p.Cells),
		})
	}
	return out
}

// UsedBy returns the id of the path in view that contains (row, col)
func (e *PathEditor) UsedBy(view models.View, row, col int) (int, bool) {
	cell := models.Cell{Row: row, Col: col}
	for _, p := range e.paths[view] {
		if slices.Contains(p.Cells, cell) {
			return p.ID, true
		}
	}
	return 0, false
}

func (e *PathEditor) find(view models.View, id int) int {
	return slices.IndexFunc(e.paths[view], func(p models.Path) bool { return p.ID == id })
}

func (e *PathEditor) inGrid(row, col int) bool {
	return row >= 0 && col >= 0 && row < e.rows && col < e.cols
}

func (e *PathEditor) deselect() {
	e.active, e.activeView, e.hasActive = 0, "", false
}
