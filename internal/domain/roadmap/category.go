package roadmap

import "strings"

type Category int

const (
	CategoryGeneric Category = iota
	CategoryMERN
	CategoryFrontend
	CategoryBackend
	CategoryDataScience
	CategoryMobile
	CategoryDevOps
	CategoryBeginner
)

var categoryNames = map[Category]string{
	CategoryGeneric:     "generic",
	CategoryMERN:        "mern",
	CategoryFrontend:    "frontend",
	CategoryBackend:     "backend",
	CategoryDataScience: "data_science",
	CategoryMobile:      "mobile",
	CategoryDevOps:      "devops",
	CategoryBeginner:    "beginner",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return categoryNames[CategoryGeneric]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	*c = ParseCategory(string(b))
	return nil
}

// ParseCategory maps a category name back to its value. Unknown names map to
// CategoryGeneric.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == s {
			return c
		}
	}
	return CategoryGeneric
}

func Categories() []Category {
	return []Category{
		CategoryMERN,
		CategoryFrontend,
		CategoryBackend,
		CategoryDataScience,
		CategoryMobile,
		CategoryDevOps,
		CategoryBeginner,
		CategoryGeneric,
	}
}
