package course

// Unit is a leaf piece of course content. A locked unit is visible but not
// yet available; it neither contributes to nor blocks completion.
type Unit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"` // video, article, quiz, exercise
	Duration  string `json:"duration"`
	Completed bool   `json:"completed"`
	Locked    bool   `json:"locked"`
}

// Module groups units. Completed is derived, never set directly: a module is
// completed iff every non-locked unit under it is completed.
type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Units       []Unit `json:"units"`
	Completed   bool   `json:"completed"`
}

// Course is the root of the unit hierarchy. Progress is always a concrete
// 0-100 value, defaulting to 0 at construction, so callers never have to
// guard against a missing field.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       string   `json:"level"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Modules     []Module `json:"modules"`
	Progress    int      `json:"progress"`
}

// Resource is a leaf of a roadmap step.
type Resource struct {
	Title     string `json:"title"`
	Type      string `json:"type"` // article, video, project, quiz
	URL       string `json:"url"`
	Completed bool   `json:"completed"`
}

// Step is completed iff all of its resources are completed.
type Step struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Resources   []Resource `json:"resources"`
	Completed   bool       `json:"completed"`
}

// Roadmap is a guided learning path; progress derives from completed steps.
type Roadmap struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Category    string `json:"category"`
	Steps       []Step `json:"steps"`
	Progress    int    `json:"progress"`
}
