// Package recommend maps a learner's quiz history to follow-on topics.
// The rules are a static table walked uniformly, not a learned model:
// the same history always yields the same recommendations.
package recommend

import "strings"

// Item is one suggested topic. Ephemeral: recomputed per request, never
// persisted.
type Item struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Progress   int    `json:"progress"`
}

// maxItems caps the list shown on the dashboard.
const maxItems = 3

// followOn is a candidate suggestion. Keyword is what disqualifies it when
// the learner has already studied a matching topic.
type followOn struct {
	topic      string
	difficulty string
	keyword    string
}

// family groups follow-ons behind the keywords that activate them.
// Declaration order is the tie-break when more than three candidates match.
type family struct {
	keywords  []string
	followOns []followOn
}

var families = []family{
	{
		keywords: []string{"javascript", "js"},
		followOns: []followOn{
			{topic: "Advanced JavaScript", difficulty: "Intermediate", keyword: "advanced javascript"},
			{topic: "React", difficulty: "Intermediate", keyword: "react"},
		},
	},
	{
		keywords: []string{"react"},
		followOns: []followOn{
			{topic: "React Hooks", difficulty: "Intermediate", keyword: "react hooks"},
			{topic: "Next.js", difficulty: "Advanced", keyword: "next.js"},
		},
	},
	{
		keywords: []string{"css"},
		followOns: []followOn{
			{topic: "CSS Grid", difficulty: "Intermediate", keyword: "css grid"},
			{topic: "Tailwind CSS", difficulty: "Beginner", keyword: "tailwind"},
		},
	},
	{
		keywords: []string{"python"},
		followOns: []followOn{
			{topic: "Django", difficulty: "Intermediate", keyword: "django"},
			{topic: "Python Data Science", difficulty: "Advanced", keyword: "data science"},
		},
	},
}

var defaults = []Item{
	{Topic: "JavaScript Fundamentals", Difficulty: "Beginner"},
	{Topic: "HTML & CSS Basics", Difficulty: "Beginner"},
	{Topic: "Python Programming", Difficulty: "Beginner"},
}

// ForTopics suggests up to three follow-on topics for the topics already
// attempted. Matching is case-insensitive substring; a follow-on is skipped
// when any attempted topic already contains its keyword. With no attempts or
// no matching family, the fixed beginner defaults come back.
func ForTopics(attempted []string) []Item {
	lowered := make([]string, len(attempted))
	for i, t := range attempted {
		lowered[i] = strings.ToLower(t)
	}

	var items []Item
	for _, fam := range families {
		if !anyContains(lowered, fam.keywords...) {
			continue
		}
		for _, f := range fam.followOns {
			if anyContains(lowered, f.keyword) {
				continue
			}
			items = append(items, Item{Topic: f.topic, Difficulty: f.difficulty})
		}
	}

	if len(items) == 0 {
		return append([]Item(nil), defaults...)
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}

func anyContains(topics []string, keywords ...string) bool {
	for _, t := range topics {
		for _, kw := range keywords {
			if strings.Contains(t, kw) {
				return true
			}
		}
	}
	return false
}
