package roadmap

import "strings"

type keywordRule struct {
	category Category
	keywords []string
}

// Evaluated top to bottom, first hit wins. The order is load bearing: a goal
// mentioning both "react" and "node" is a Frontend goal.
var classificationRules = []keywordRule{
	{category: CategoryMERN, keywords: []string{"mern", "full stack"}},
	{category: CategoryFrontend, keywords: []string{"frontend", "react"}},
	{category: CategoryBackend, keywords: []string{"backend", "node"}},
	{category: CategoryDataScience, keywords: []string{"data science", "python"}},
	{category: CategoryMobile, keywords: []string{"mobile", "android"}},
	{category: CategoryDevOps, keywords: []string{"devops", "cloud"}},
	{category: CategoryBeginner, keywords: []string{"first year", "beginner"}},
}

// Classify picks a roadmap category by plain substring search over the
// lower-cased goal. It is keyword matching, not language understanding:
// "frontend-ish" matches Frontend and "fullstack" (no space) matches nothing.
func Classify(goal string) Category {
	g := strings.ToLower(goal)
	if strings.TrimSpace(g) == "" {
		return CategoryGeneric
	}

	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(g, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneric
}
