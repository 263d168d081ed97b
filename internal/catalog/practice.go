package catalog

import (
	"codecraft/internal/domain/matching"
	"codecraft/internal/domain/skill"
)

var companies = []matching.CompanyProfile{
	{
		Name:     "Google",
		Required: []string{"DSA", "React", "Node.js", "System Design", "SQL"},
		Roles:    []string{"Backend", "Frontend", "Full Stack"},
	},
	{
		Name:     "Amazon",
		Required: []string{"DSA", "Java", "AWS", "Databases", "Problem Solving"},
		Roles:    []string{"Backend", "DevOps"},
	},
	{
		Name:     "Meta",
		Required: []string{"React", "GraphQL", "JavaScript", "CSS", "Web Performance"},
		Roles:    []string{"Frontend", "Full Stack"},
	},
	{
		Name:     "Microsoft",
		Required: []string{"C#", "Cloud", "Windows", "APIs", "System Design"},
		Roles:    []string{"Backend", "DevOps"},
	},
	{
		Name:     "Apple",
		Required: []string{"Swift", "iOS", "Objective-C", "Performance", "UI/UX"},
		Roles:    []string{"Mobile", "iOS"},
	},
}

func Companies() []matching.CompanyProfile {
	out := make([]matching.CompanyProfile, len(companies))
	for i, c := range companies {
		c.Required = clone(c.Required)
		c.Roles = clone(c.Roles)
		out[i] = c
	}
	return out
}

// Company looks a profile up by exact name.
func Company(name string) (matching.CompanyProfile, bool) {
	for _, c := range Companies() {
		if c.Name == name {
			return c, true
		}
	}
	return matching.CompanyProfile{}, false
}

var practiceSkills = []string{
	"DSA", "React", "Node.js", "System Design", "SQL", "JavaScript",
	"Java", "AWS", "Databases", "C#", "GraphQL", "CSS",
}

func PracticeSkills() []string {
	return clone(practiceSkills)
}

var resources = map[string][]skill.Resource{
	"DSA": {
		{Title: "Arrays & Strings", URL: "https://www.geeksforgeeks.org/array-data-structure/", Platform: "GFG"},
		{Title: "DSA Course", URL: "https://www.w3schools.com/dsa/", Platform: "W3Schools"},
		{Title: "LeetCode Problems", URL: "https://leetcode.com/explore/", Platform: "LeetCode"},
	},
	"React": {
		{Title: "React Basics", URL: "https://www.w3schools.com/react/", Platform: "W3Schools"},
		{Title: "React Docs", URL: "https://react.dev", Platform: "Official Docs"},
	},
	"Node.js": {
		{Title: "Node.js Tutorial", URL: "https://www.w3schools.com/nodejs/", Platform: "W3Schools"},
		{Title: "Express.js Guide", URL: "https://expressjs.com", Platform: "Official Docs"},
	},
	"System Design": {
		{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Platform: "GitHub"},
		{Title: "GFG System Design", URL: "https://www.geeksforgeeks.org/system-design/", Platform: "GFG"},
	},
	"SQL": {
		{Title: "SQL Tutorial", URL: "https://www.w3schools.com/sql/", Platform: "W3Schools"},
		{Title: "LeetCode SQL", URL: "https://leetcode.com/explore/learn/card/sql-language/", Platform: "LeetCode"},
	},
	"JavaScript": {
		{Title: "JS Tutorial", URL: "https://www.w3schools.com/js/", Platform: "W3Schools"},
		{Title: "MDN Web Docs", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/", Platform: "MDN"},
	},
}

// Resources returns learning links for skill. Lookup is case-insensitive;
// unknown skills yield an empty slice.
func Resources(name string) []skill.Resource {
	want := matching.Normalize(name)
	for k, v := range resources {
		if matching.Normalize(k) == want {
			return append([]skill.Resource(nil), v...)
		}
	}
	return []skill.Resource{}
}
