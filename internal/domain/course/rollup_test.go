package course_test

import (
	"testing"

	"github.com/eduassist/backend/internal/domain/course"
)

// testCourse builds a course with 10 unlocked units across two modules and
// a third module of 6 locked units.
func testCourse() course.Course {
	units := func(prefix string, n int, locked bool) []course.Unit {
		out := make([]course.Unit, n)
		for i := range out {
			out[i] = course.Unit{ID: prefix + string(rune('0'+i)), Title: "Unit", Type: "article", Locked: locked}
		}
		return out
	}
	return course.Course{
		ID: "c1",
		Modules: []course.Module{
			{ID: "m1", Units: units("a", 5, false)},
			{ID: "m2", Units: units("b", 5, false)},
			{ID: "m3", Units: units("c", 6, true)},
		},
	}
}

func TestRollup_LockedUnitsExcluded(t *testing.T) {
	c := testCourse()

	// 4 of the 10 unlocked units completed; the 6 locked ones must not
	// change the denominator.
	c.Modules[0].Units[0].Completed = true
	c.Modules[0].Units[1].Completed = true
	c.Modules[0].Units[2].Completed = true
	c.Modules[1].Units[0].Completed = true
	c.Rollup()

	if c.Progress != 40 {
		t.Errorf("expected progress 40, got %d", c.Progress)
	}
}

func TestRollup_Idempotent(t *testing.T) {
	c := testCourse()
	c.Modules[0].Units[0].Completed = true

	c.Rollup()
	first := c.Progress
	c.Rollup()

	if c.Progress != first {
		t.Errorf("expected progress to stay %d, got %d", first, c.Progress)
	}
}

func TestRollup_Monotone(t *testing.T) {
	c := testCourse()

	previous := 0
	for mi := 0; mi < 2; mi++ {
		for ui := range c.Modules[mi].Units {
			c.Modules[mi].Units[ui].Completed = true
			c.Rollup()
			if c.Progress < previous {
				t.Fatalf("progress decreased from %d to %d", previous, c.Progress)
			}
			previous = c.Progress
		}
	}
	if c.Progress != 100 {
		t.Errorf("expected 100 after completing everything, got %d", c.Progress)
	}
}

func TestRollup_ModuleCompletion(t *testing.T) {
	c := testCourse()

	for ui := range c.Modules[0].Units {
		c.Modules[0].Units[ui].Completed = true
	}
	c.Rollup()

	if !c.Modules[0].Completed {
		t.Error("expected module with all units completed to be completed")
	}
	if c.Modules[1].Completed {
		t.Error("expected untouched module to stay incomplete")
	}
}

func TestRollup_ZeroEligibleUnits(t *testing.T) {
	c := course.Course{ID: "c1", Modules: []course.Module{
		{ID: "m1", Units: []course.Unit{{ID: "u1", Locked: true}}},
	}}

	c.Rollup()

	if c.Progress != 0 {
		t.Errorf("expected 0 with no eligible units, got %d", c.Progress)
	}
}

func TestCompleteUnit(t *testing.T) {
	c := testCourse()

	if !c.CompleteUnit("m1", "a0") {
		t.Fatal("expected unit to be found")
	}
	if c.Progress != 10 {
		t.Errorf("expected progress 10, got %d", c.Progress)
	}
	if c.CompleteUnit("m1", "zz") {
		t.Error("expected unknown unit to report false")
	}
	if c.CompleteUnit("m3", "c0") {
		t.Error("expected locked unit to report false")
	}
}

func TestApplyProgress(t *testing.T) {
	c := testCourse()

	c.ApplyProgress(map[string]int{
		course.UnitContentID("c1", "m1", "a0"): 100,
		course.UnitContentID("c1", "m1", "a1"): 100,
		course.UnitContentID("c1", "m2", "b0"): 50, // not complete
	})

	if c.Progress != 20 {
		t.Errorf("expected progress 20, got %d", c.Progress)
	}
}

func testRoadmap() course.Roadmap {
	resources := func(titles ...string) []course.Resource {
		out := make([]course.Resource, len(titles))
		for i, title := range titles {
			out[i] = course.Resource{Title: title, Type: "article", URL: "#"}
		}
		return out
	}
	return course.Roadmap{
		ID: "r1",
		Steps: []course.Step{
			{ID: "s1", Resources: resources("One", "Two")},
			{ID: "s2", Resources: resources("Three")},
			{ID: "s3", Resources: resources("Four", "Five")},
		},
	}
}

func TestRoadmapRollup_StepAndProgress(t *testing.T) {
	r := testRoadmap()

	if !r.CompleteResource("s1", "One") {
		t.Fatal("expected resource to be found")
	}
	if r.Steps[0].Completed {
		t.Error("expected step to stay incomplete with one resource left")
	}
	if r.Progress != 0 {
		t.Errorf("expected progress 0, got %d", r.Progress)
	}

	r.CompleteResource("s1", "Two")
	if !r.Steps[0].Completed {
		t.Error("expected step completed once all resources are")
	}
	// round(100 * 1 / 3) = 33
	if r.Progress != 33 {
		t.Errorf("expected progress 33, got %d", r.Progress)
	}
}

func TestRoadmapRollup_UnknownResource(t *testing.T) {
	r := testRoadmap()

	if r.CompleteResource("s1", "Missing") {
		t.Error("expected unknown resource to report false")
	}
	if r.CompleteResource("zz", "One") {
		t.Error("expected unknown step to report false")
	}
}

func TestRoadmapApplyProgress(t *testing.T) {
	r := testRoadmap()

	r.ApplyProgress(map[string]int{
		course.ResourceContentID("s2", "Three"): 100,
	})

	if !r.Steps[1].Completed {
		t.Error("expected step s2 completed")
	}
	if r.Progress != 33 {
		t.Errorf("expected progress 33, got %d", r.Progress)
	}
}

func TestCatalog(t *testing.T) {
	catalog := course.NewCatalog()

	if len(catalog.Courses()) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	c, ok := catalog.Course("c1")
	if !ok {
		t.Fatal("expected course c1")
	}
	if len(c.Modules) == 0 {
		t.Error("expected curriculum attached to course detail")
	}
	if c.Progress != 0 {
		t.Errorf("expected fresh course progress 0, got %d", c.Progress)
	}

	if _, ok := catalog.Course("nope"); ok {
		t.Error("expected unknown course to report false")
	}

	if len(catalog.Roadmaps()) != 3 {
		t.Errorf("expected 3 roadmaps, got %d", len(catalog.Roadmaps()))
	}
}
