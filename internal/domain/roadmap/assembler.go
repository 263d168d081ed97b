package roadmap

import "strings"

// Assemble returns the canned roadmap for category. Content is rebuilt on every
// call so callers may mutate the result freely. Unknown categories fall back to
// the generic template.
func Assemble(category Category, goal string) Roadmap {
	goal = strings.TrimSpace(goal)

	build, ok := cannedRoadmaps[category]
	if !ok {
		r := genericRoadmap(goal)
		r.Goal = goal
		r.Category = CategoryGeneric
		return r
	}

	r := build()
	r.Goal = goal
	r.Category = category
	return r
}

func Build(goal string) Roadmap {
	return Assemble(Classify(goal), goal)
}
