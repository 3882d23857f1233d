package planner

import (
	"context"
	"math"

	"weekendly.app/models"
)

// DefaultActivationDistance is how far the pointer must travel before a
// press becomes a drag. Shorter movements are treated as clicks.
const DefaultActivationDistance = 8.0

// PlanMutator is the subset of store operations the drag coordinator issues
type PlanMutator interface {
	Plan() models.WeekendPlan
	ReorderActivities(ctx context.Context, day models.Day, ordered []models.Activity) (models.WeekendPlan, error)
	MoveActivity(ctx context.Context, id string, fromDay, toDay models.Day, newIndex *int) models.WeekendPlan
}

// Point is a pointer position in screen coordinates
type Point struct {
	X float64
	Y float64
}

func (p Point) distanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// DragCoordinator interprets a pointer-drag session spanning the two day
// collections and translates it into store calls. Cross-day transfers are
// committed live while dragging over the other day; an in-day drop becomes a
// single reorder. A canceled drag does not roll back transfers already
// committed.
type DragCoordinator struct {
	mutator    PlanMutator
	activation float64

	pressedID string
	origin    Point
	dragging  bool
	activeID  string
	snapshot  models.Activity
	source    models.Day
}

// NewDragCoordinator creates a coordinator with the default activation distance
func NewDragCoordinator(mutator PlanMutator) *DragCoordinator {
	return &DragCoordinator{
		mutator:    mutator,
		activation: DefaultActivationDistance,
	}
}

// SetActivationDistance overrides the drag activation threshold
func (d *DragCoordinator) SetActivationDistance(distance float64) {
	d.activation = distance
}

// Dragging reports whether a drag session is active
func (d *DragCoordinator) Dragging() bool {
	return d.dragging
}

// Active returns the dragged activity snapshot for visual feedback
func (d *DragCoordinator) Active() (models.Activity, bool) {
	if !d.dragging {
		return models.Activity{}, false
	}
	return d.snapshot, true
}

// resolveContainer maps a drop target id to a day: either the day owning the
// activity under the pointer, or the day id itself when hovering empty space.
func (d *DragCoordinator) resolveContainer(targetID string) (models.Day, bool) {
	if _, day, found := FindActivity(d.mutator.Plan(), targetID); found {
		return day, true
	}
	if day := models.Day(targetID); day.Valid() {
		return day, true
	}
	return "", false
}

// PointerDown records a press on an activity as a drag candidate
func (d *DragCoordinator) PointerDown(id string, at Point) {
	if d.dragging {
		return
	}
	if _, _, found := FindActivity(d.mutator.Plan(), id); !found {
		return
	}
	d.pressedID = id
	d.origin = at
}

// PointerMove advances the session. It activates the drag once the pointer
// leaves the activation radius, and while dragging it commits a live cross-day
// transfer whenever the hovered container differs from the current source.
func (d *DragCoordinator) PointerMove(ctx context.Context, at Point, targetID string) {
	if !d.dragging {
		if d.pressedID == "" {
			return
		}
		if d.origin.distanceTo(at) < d.activation {
			return
		}

		activity, day, found := FindActivity(d.mutator.Plan(), d.pressedID)
		if !found {
			d.reset()
			return
		}
		d.dragging = true
		d.activeID = d.pressedID
		d.snapshot = activity
		d.source = day
	}

	if targetID == "" {
		return
	}
	target, ok := d.resolveContainer(targetID)
	if !ok || target == d.source {
		return
	}

	// Live transfer for immediate visual feedback: append + re-sort policy
	d.mutator.MoveActivity(ctx, d.activeID, d.source, target, nil)
	d.source = target
}

// PointerUp ends the session. A drop within the current source day becomes a
// reorder moving the active activity next to the hovered one; cross-day moves
// were already committed during drag-over. A press that never activated is a
// click and mutates nothing.
func (d *DragCoordinator) PointerUp(ctx context.Context, targetID string) {
	defer d.reset()

	if !d.dragging || targetID == "" {
		return
	}

	target, ok := d.resolveContainer(targetID)
	if !ok || target != d.source {
		// Cross-day drops were handled live during drag-over; anything else
		// means no valid drop target, so the plan stays as-is.
		return
	}

	activities := d.mutator.Plan().DayActivities(target)
	oldIndex := indexOf(activities, d.activeID)
	newIndex := indexOf(activities, targetID)
	if oldIndex < 0 || newIndex < 0 || oldIndex == newIndex {
		return
	}

	reordered := ArrayMove(activities, oldIndex, newIndex)
	if _, err := d.mutator.ReorderActivities(ctx, target, reordered); err != nil {
		// The permuted list came from the current plan, so this only fires
		// if a concurrent mutation changed the day mid-drop.
		return
	}
}

// Cancel abandons the session. Transfers already committed while dragging
// across days are intentionally not rolled back.
func (d *DragCoordinator) Cancel() {
	d.reset()
}

func (d *DragCoordinator) reset() {
	d.pressedID = ""
	d.dragging = false
	d.activeID = ""
	d.snapshot = models.Activity{}
	d.source = ""
	d.origin = Point{}
}
