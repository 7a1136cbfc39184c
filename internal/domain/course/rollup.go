package course

import (
	"fmt"

	"github.com/eduassist/backend/internal/domain/quiz"
)

// UnitContentID encodes a unit for the user_progress table.
func UnitContentID(courseID, moduleID, unitID string) string {
	return fmt.Sprintf("%s-%s-%s", courseID, moduleID, unitID)
}

// ResourceContentID encodes a roadmap resource for the user_progress table.
func ResourceContentID(stepID, resourceTitle string) string {
	return fmt.Sprintf("%s-%s", stepID, resourceTitle)
}

// CompleteUnit marks one unit completed and rolls the change up through its
// module and the course percentage. Returns false when the unit is unknown
// or locked. Calling it again for an already-completed unit changes nothing.
func (c *Course) CompleteUnit(moduleID, unitID string) bool {
	for mi := range c.Modules {
		if c.Modules[mi].ID != moduleID {
			continue
		}
		for ui := range c.Modules[mi].Units {
			u := &c.Modules[mi].Units[ui]
			if u.ID != unitID || u.Locked {
				continue
			}
			u.Completed = true
			c.Rollup()
			return true
		}
	}
	return false
}

// Rollup recomputes every derived completion value from the unit leaves up.
// Locked units are excluded from both sides of the ratio. Recomputing from
// scratch on every change keeps the derived values drift-free.
func (c *Course) Rollup() {
	completed, eligible := 0, 0
	for mi := range c.Modules {
		m := &c.Modules[mi]
		allDone := true
		for _, u := range m.Units {
			if u.Locked {
				continue
			}
			eligible++
			if u.Completed {
				completed++
			} else {
				allDone = false
			}
		}
		m.Completed = allDone
	}
	c.Progress = quiz.Percentage(completed, eligible)
}

// ApplyProgress overlays persisted unit completion onto the course and
// recomputes the rollup. A unit counts as completed when its content row
// reached 100.
func (c *Course) ApplyProgress(byContentID map[string]int) {
	for mi := range c.Modules {
		for ui := range c.Modules[mi].Units {
			u := &c.Modules[mi].Units[ui]
			if byContentID[UnitContentID(c.ID, c.Modules[mi].ID, u.ID)] == 100 {
				u.Completed = true
			}
		}
	}
	c.Rollup()
}

// CompleteResource marks one step resource completed and rolls the change up
// through the step and the roadmap percentage. Returns false for an unknown
// step or resource.
func (r *Roadmap) CompleteResource(stepID, resourceTitle string) bool {
	for si := range r.Steps {
		if r.Steps[si].ID != stepID {
			continue
		}
		for ri := range r.Steps[si].Resources {
			if r.Steps[si].Resources[ri].Title != resourceTitle {
				continue
			}
			r.Steps[si].Resources[ri].Completed = true
			r.Rollup()
			return true
		}
	}
	return false
}

// Rollup recomputes step completion and the roadmap percentage. A step is
// completed iff all its resources are; progress is the completed-step ratio.
func (r *Roadmap) Rollup() {
	completedSteps := 0
	for si := range r.Steps {
		s := &r.Steps[si]
		allDone := len(s.Resources) > 0
		for _, res := range s.Resources {
			if !res.Completed {
				allDone = false
				break
			}
		}
		s.Completed = allDone
		if allDone {
			completedSteps++
		}
	}
	r.Progress = quiz.Percentage(completedSteps, len(r.Steps))
}

// ApplyProgress overlays persisted resource completion onto the roadmap.
func (r *Roadmap) ApplyProgress(byContentID map[string]int) {
	for si := range r.Steps {
		for ri := range r.Steps[si].Resources {
			res := &r.Steps[si].Resources[ri]
			if byContentID[ResourceContentID(r.Steps[si].ID, res.Title)] == 100 {
				res.Completed = true
			}
		}
	}
	r.Rollup()
}
