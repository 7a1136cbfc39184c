package quiz

import "fmt"

// template is a topic-parameterized question blueprint. %s slots take the
// configured topic.
type template struct {
	prompt       string
	options      [4]string
	correctIndex int
	explanation  string
}

// instantiate fills the topic into every %s slot of the template.
func (t template) instantiate(topic string) (prompt string, options []string, explanation string) {
	prompt = fill(t.prompt, topic)
	options = make([]string, len(t.options))
	for i, opt := range t.options {
		options[i] = fill(opt, topic)
	}
	return prompt, options, fill(t.explanation, topic)
}

func fill(s, topic string) string {
	if !containsSlot(s) {
		return s
	}
	args := make([]any, countSlots(s))
	for i := range args {
		args[i] = topic
	}
	return fmt.Sprintf(s, args...)
}

func containsSlot(s string) bool { return countSlots(s) > 0 }

func countSlots(s string) int {
	n := 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '%' && s[i+1] == 's' {
			n++
		}
	}
	return n
}

// templatesByCategory holds three blueprints per category. Breadth over a
// small template set is what the category-first sampling relies on.
var templatesByCategory = map[Category][]template{
	CategoryFundamentals: {
		{
			prompt: "What is a key concept in %s?",
			options: [4]string{
				"Variables store data values",
				"Functions are not reusable",
				"Code runs backwards",
				"Syntax is optional",
			},
			correctIndex: 0,
			explanation:  "Variables are fundamental in programming as they store and manage data values that can be used throughout your program.",
		},
		{
			prompt: "Which statement about %s is correct?",
			options: [4]string{
				"%s is only used for simple tasks",
				"%s follows standardized principles",
				"%s cannot be used professionally",
				"%s was invented last year",
			},
			correctIndex: 1,
			explanation:  "%s, like many subjects, follows standardized principles and best practices that have evolved over time.",
		},
		{
			prompt: "What makes %s useful in real-world applications?",
			options: [4]string{
				"Its complexity makes it impressive",
				"Its practical application to solving problems",
				"It cannot be used in real-world applications",
				"It requires minimal understanding",
			},
			correctIndex: 1,
			explanation:  "%s is valuable because it can be applied practically to solve real-world problems and improve processes.",
		},
	},
	CategoryBestPractices: {
		{
			prompt: "What is an important practice when learning %s?",
			options: [4]string{
				"Never practice",
				"Copy without understanding",
				"Practice regularly with understanding",
				"Memorize without application",
			},
			correctIndex: 2,
			explanation:  "Regular practice combined with understanding underlying concepts is the most effective way to master any subject.",
		},
		{
			prompt: "Best practice for %s includes:",
			options: [4]string{
				"Using unclear terminology",
				"Avoiding documentation",
				"Following established conventions",
				"Working without planning",
			},
			correctIndex: 2,
			explanation:  "Following established conventions ensures your work is understandable to others and maintains quality standards.",
		},
		{
			prompt: "To improve in %s, one should:",
			options: [4]string{
				"Avoid feedback from others",
				"Study only theory without practice",
				"Seek diverse resources and practice regularly",
				"Learn only one approach",
			},
			correctIndex: 2,
			explanation:  "Seeking diverse learning resources and applying knowledge through regular practice leads to comprehensive understanding.",
		},
	},
	CategoryImplementation: {
		{
			prompt: "When implementing %s, it's important to:",
			options: [4]string{
				"Rush through the process",
				"Plan and structure your approach",
				"Avoid testing until the end",
				"Use as few resources as possible",
			},
			correctIndex: 1,
			explanation:  "Planning and structuring your approach helps ensure efficient implementation and reduces errors.",
		},
		{
			prompt: "A common challenge when working with %s is:",
			options: [4]string{
				"Too many resources available",
				"Managing complexity and organization",
				"Working too efficiently",
				"Having too few problems to solve",
			},
			correctIndex: 1,
			explanation:  "Managing complexity and staying organized are common challenges that require careful attention and good practices.",
		},
		{
			prompt: "For successful implementation of %s, one should:",
			options: [4]string{
				"Avoid using existing solutions",
				"Implement everything at once",
				"Start with small steps and iterate",
				"Skip the planning phase",
			},
			correctIndex: 2,
			explanation:  "Starting with small, manageable steps and iterating based on feedback leads to more successful implementations.",
		},
	},
	CategoryProblemSolving: {
		{
			prompt: "When solving problems in %s, debugging means:",
			options: [4]string{
				"Adding more complexity",
				"Finding and fixing errors systematically",
				"Ignoring minor issues",
				"Starting over from scratch",
			},
			correctIndex: 1,
			explanation:  "Debugging is the process of systematically identifying, analyzing, and resolving errors to ensure proper functionality.",
		},
		{
			prompt: "An effective approach to solving complex problems in %s is:",
			options: [4]string{
				"Solving everything at once",
				"Breaking problems into smaller parts",
				"Always using the most advanced techniques",
				"Avoiding collaboration",
			},
			correctIndex: 1,
			explanation:  "Breaking complex problems into smaller, manageable parts makes them easier to solve and understand.",
		},
		{
			prompt: "Which technique is NOT recommended for %s problem-solving?",
			options: [4]string{
				"Systematic testing",
				"Learning from examples",
				"Working without a plan",
				"Seeking peer feedback",
			},
			correctIndex: 2,
			explanation:  "Working without a plan leads to inefficient problem-solving and increases the likelihood of errors.",
		},
	},
}
