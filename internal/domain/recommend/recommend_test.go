package recommend_test

import (
	"testing"

	"github.com/eduassist/backend/internal/domain/recommend"
)

func topics(items []recommend.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Topic
	}
	return out
}

func assertTopics(t *testing.T, got []recommend.Item, want ...string) {
	t.Helper()
	gotTopics := topics(got)
	if len(gotTopics) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotTopics)
	}
	for i := range want {
		if gotTopics[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotTopics)
		}
	}
}

func TestForTopics_SkipsAlreadyStudied(t *testing.T) {
	got := recommend.ForTopics([]string{"JavaScript", "React"})

	// React itself is dropped because it was already attempted; its own
	// follow-ons take over.
	assertTopics(t, got, "Advanced JavaScript", "React Hooks", "Next.js")
}

func TestForTopics_SingleFamily(t *testing.T) {
	got := recommend.ForTopics([]string{"JavaScript Basics"})

	assertTopics(t, got, "Advanced JavaScript", "React")
	if got[0].Difficulty != "Intermediate" {
		t.Errorf("expected Intermediate, got %q", got[0].Difficulty)
	}
}

func TestForTopics_CapsAtThree(t *testing.T) {
	got := recommend.ForTopics([]string{"JavaScript", "CSS", "Python"})

	assertTopics(t, got, "Advanced JavaScript", "React", "CSS Grid")
}

func TestForTopics_CaseInsensitive(t *testing.T) {
	got := recommend.ForTopics([]string{"aDvAnCeD JaVaScRiPt"})

	// The family activates, but its first follow-on is already covered.
	assertTopics(t, got, "React")
}

func TestForTopics_DefaultsWhenNothingMatches(t *testing.T) {
	for _, attempted := range [][]string{nil, {}, {"Rust", "Haskell"}} {
		got := recommend.ForTopics(attempted)
		assertTopics(t, got, "JavaScript Fundamentals", "HTML & CSS Basics", "Python Programming")
		for _, it := range got {
			if it.Difficulty != "Beginner" {
				t.Errorf("expected Beginner default, got %q", it.Difficulty)
			}
		}
	}
}
