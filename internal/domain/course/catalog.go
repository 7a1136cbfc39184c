package course

// The catalog is built-in content. Callers get fresh copies so applying one
// user's progress never leaks into another request.

func courseSummaries() []Course {
	return []Course{
		{ID: "c1", Title: "JavaScript Fundamentals", Description: "Master the core concepts of JavaScript, from variables and data types to functions and objects.", Level: "Beginner", Category: "Web Development", Duration: "2 weeks"},
		{ID: "c2", Title: "React.js: Zero to Hero", Description: "Build modern, reactive user interfaces with React. Learn hooks, context, and state management.", Level: "Intermediate", Category: "Web Development", Duration: "4 weeks"},
		{ID: "c3", Title: "Python for Data Science", Description: "Learn how to analyze and visualize data using Python libraries like Pandas, NumPy, and Matplotlib.", Level: "Beginner", Category: "Data Science", Duration: "3 weeks"},
		{ID: "c4", Title: "Advanced CSS Techniques", Description: "Take your CSS skills to the next level with CSS Grid, Flexbox, animations, and more.", Level: "Intermediate", Category: "Web Development", Duration: "2 weeks"},
		{ID: "c5", Title: "Full Stack Development with MERN", Description: "Build complete web applications using MongoDB, Express, React, and Node.js.", Level: "Advanced", Category: "Web Development", Duration: "6 weeks"},
		{ID: "c6", Title: "Introduction to Machine Learning", Description: "Understand the basics of machine learning and build your first model.", Level: "Beginner", Category: "Data Science", Duration: "4 weeks"},
	}
}

// curriculum is the module/unit structure attached to a course when it is
// viewed in detail. The last module ships locked until earlier content is
// finished elsewhere in the product.
func curriculum() []Module {
	return []Module{
		{
			ID:          "m1",
			Title:       "Introduction and Setup",
			Description: "Get started with the basics and set up your development environment",
			Units: []Unit{
				{ID: "u1", Title: "Welcome to the Course", Type: "video", Duration: "5 min"},
				{ID: "u2", Title: "Setting Up Your Environment", Type: "article", Duration: "10 min"},
				{ID: "u3", Title: "First Steps Quiz", Type: "quiz", Duration: "5 min"},
			},
		},
		{
			ID:          "m2",
			Title:       "Core Concepts",
			Description: "Learn the fundamental concepts that form the foundation",
			Units: []Unit{
				{ID: "u4", Title: "Understanding the Basics", Type: "video", Duration: "15 min"},
				{ID: "u5", Title: "Working with Data", Type: "article", Duration: "12 min"},
				{ID: "u6", Title: "Practice Exercise", Type: "exercise", Duration: "20 min"},
				{ID: "u7", Title: "Core Concepts Quiz", Type: "quiz", Duration: "10 min"},
			},
		},
		{
			ID:          "m3",
			Title:       "Advanced Techniques",
			Description: "Take your skills to the next level with advanced concepts",
			Units: []Unit{
				{ID: "u8", Title: "Advanced Topic 1", Type: "video", Duration: "20 min", Locked: true},
				{ID: "u9", Title: "Advanced Topic 2", Type: "article", Duration: "15 min", Locked: true},
				{ID: "u10", Title: "Advanced Exercise", Type: "exercise", Duration: "30 min", Locked: true},
			},
		},
	}
}

func roadmaps() []Roadmap {
	return []Roadmap{
		{
			ID:          "r1",
			Title:       "Frontend Developer Path",
			Description: "Comprehensive path to becoming a proficient frontend developer with modern technologies.",
			Level:       "Beginner",
			Category:    "Web Development",
			Steps: []Step{
				{ID: "s1", Title: "HTML & CSS Basics", Description: "Learn the foundations of web development", Resources: []Resource{
					{Title: "HTML Structure Fundamentals", Type: "article", URL: "#"},
					{Title: "CSS Styling Basics", Type: "video", URL: "#"},
					{Title: "Building Your First Webpage", Type: "project", URL: "#"},
				}},
				{ID: "s2", Title: "JavaScript Fundamentals", Description: "Master core JavaScript concepts", Resources: []Resource{
					{Title: "JavaScript Syntax Guide", Type: "article", URL: "#"},
					{Title: "Working with DOM", Type: "video", URL: "#"},
					{Title: "JavaScript Quiz", Type: "quiz", URL: "/quiz?topic=JavaScript"},
				}},
				{ID: "s3", Title: "Frontend Frameworks", Description: "Learn React, Vue, or Angular", Resources: []Resource{
					{Title: "Introduction to React", Type: "article", URL: "#"},
					{Title: "Building Components in React", Type: "video", URL: "#"},
					{Title: "Todo App Project", Type: "project", URL: "#"},
				}},
			},
		},
		{
			ID:          "r2",
			Title:       "Python Developer Path",
			Description: "From Python basics to advanced applications in data science, web development, and automation.",
			Level:       "Beginner",
			Category:    "Data Science",
			Steps: []Step{
				{ID: "s1", Title: "Python Fundamentals", Description: "Learn Python syntax and core concepts", Resources: []Resource{
					{Title: "Python Syntax Guide", Type: "article", URL: "#"},
					{Title: "Data Types & Functions", Type: "video", URL: "#"},
					{Title: "Python Basics Quiz", Type: "quiz", URL: "/quiz?topic=Python"},
				}},
				{ID: "s2", Title: "Intermediate Python", Description: "Object-oriented programming and modules", Resources: []Resource{
					{Title: "Classes and Objects", Type: "article", URL: "#"},
					{Title: "Working with Libraries", Type: "video", URL: "#"},
					{Title: "Build a CLI Tool", Type: "project", URL: "#"},
				}},
				{ID: "s3", Title: "Python Applications", Description: "Web, data science, or automation", Resources: []Resource{
					{Title: "Flask Web Development", Type: "article", URL: "#"},
					{Title: "Data Analysis with Pandas", Type: "video", URL: "#"},
					{Title: "Build an API", Type: "project", URL: "#"},
				}},
			},
		},
		{
			ID:          "r3",
			Title:       "Full Stack Developer",
			Description: "Complete journey from frontend to backend development with modern technologies.",
			Level:       "Intermediate",
			Category:    "Web Development",
			Steps: []Step{
				{ID: "s1", Title: "Frontend Development", Description: "HTML, CSS, JavaScript, and React", Resources: []Resource{
					{Title: "Modern JavaScript", Type: "article", URL: "#"},
					{Title: "React Complete Guide", Type: "video", URL: "#"},
					{Title: "Frontend Quiz", Type: "quiz", URL: "/quiz?topic=React"},
				}},
				{ID: "s2", Title: "Backend Development", Description: "Node.js, Express, and Databases", Resources: []Resource{
					{Title: "Node.js Fundamentals", Type: "article", URL: "#"},
					{Title: "Building RESTful APIs", Type: "video", URL: "#"},
					{Title: "Backend Project", Type: "project", URL: "#"},
				}},
				{ID: "s3", Title: "Deployment & DevOps", Description: "CI/CD, Docker, and Cloud Services", Resources: []Resource{
					{Title: "Introduction to DevOps", Type: "article", URL: "#"},
					{Title: "Docker Crash Course", Type: "video", URL: "#"},
					{Title: "Deploy Full Stack App", Type: "project", URL: "#"},
				}},
			},
		},
	}
}

// Catalog serves built-in courses and roadmaps.
type Catalog struct{}

func NewCatalog() *Catalog { return &Catalog{} }

// Courses returns summary entries for every course, progress zeroed.
func (c *Catalog) Courses() []Course {
	return courseSummaries()
}

// Course returns one course with its full curriculum attached, or false when
// the id is unknown.
func (c *Catalog) Course(id string) (Course, bool) {
	for _, summary := range courseSummaries() {
		if summary.ID == id {
			summary.Modules = curriculum()
			return summary, true
		}
	}
	return Course{}, false
}

// Roadmaps returns every roadmap with its steps and resources.
func (c *Catalog) Roadmaps() []Roadmap {
	return roadmaps()
}

// Roadmap returns one roadmap by id.
func (c *Catalog) Roadmap(id string) (Roadmap, bool) {
	for _, r := range roadmaps() {
		if r.ID == id {
			return r, true
		}
	}
	return Roadmap{}, false
}
