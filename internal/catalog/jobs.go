package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"codecraft/internal/domain/job"
	"codecraft/internal/domain/skill"
)

var defaultUserSkills = []string{"React", "JavaScript", "HTML", "CSS", "Tailwind", "Git", "Figma"}

// DefaultUserSkills is the demo profile used when a caller sends no skills.
func DefaultUserSkills() []string {
	return clone(defaultUserSkills)
}

var jobs = []job.Job{
	{
		ID: "1", Title: "Frontend Engineer", Company: "TechCorp",
		Location: "Remote", Type: "Full-time", Salary: "$120k - $160k",
		Logo:           "https://ui-avatars.com/api/?name=TC&background=00f3ff&color=fff",
		PostedAt:       "2 days ago",
		RequiredSkills: []string{"React", "TypeScript", "Tailwind", "Redux"},
		Tags:           []string{"React", "TypeScript", "Tailwind"},
	},
	{
		ID: "2", Title: "Full Stack Developer", Company: "StartupX",
		Location: "San Francisco, CA", Type: "Contract", Salary: "$80 - $120 / hr",
		Logo:           "https://ui-avatars.com/api/?name=SX&background=bc13fe&color=fff",
		PostedAt:       "5 hours ago",
		RequiredSkills: []string{"Node.js", "PostgreSQL", "React", "AWS", "Docker"},
		Tags:           []string{"Node.js", "PostgreSQL", "React"},
	},
	{
		ID: "3", Title: "Junior Web Developer", Company: "Creative Agency",
		Location: "London, UK", Type: "Full-time", Salary: "£35k - £45k",
		Logo:           "https://ui-avatars.com/api/?name=CA&background=ff0055&color=fff",
		PostedAt:       "1 week ago",
		RequiredSkills: []string{"HTML", "CSS", "JavaScript", "Git"},
		Tags:           []string{"HTML", "CSS", "JavaScript"},
	},
	{
		ID: "4", Title: "AI Interface Designer", Company: "FutureSystems",
		Location: "Remote", Type: "Full-time", Salary: "$140k - $180k",
		Logo:           "https://ui-avatars.com/api/?name=FS&background=random",
		PostedAt:       "Just now",
		RequiredSkills: []string{"Figma", "UI/UX", "AI", "React"},
		Tags:           []string{"UI/UX", "Figma", "AI"},
	},
	{
		ID: "5", Title: "Senior React Native Dev", Company: "MobileFirst",
		Location: "Remote", Type: "Full-time", Salary: "$150k+",
		Logo:           "https://ui-avatars.com/api/?name=MF&background=random",
		PostedAt:       "1 day ago",
		RequiredSkills: []string{"React Native", "iOS", "Android", "TypeScript"},
		Tags:           []string{"Mobile", "React Native"},
	},
}

func Jobs() []job.Job {
	out := make([]job.Job, len(jobs))
	for i, j := range jobs {
		j.RequiredSkills = clone(j.RequiredSkills)
		j.Tags = clone(j.Tags)
		out[i] = j
	}
	return out
}

// JobsAt returns the seed jobs with CreatedAt derived from their relative
// "posted" label, so recency sorting works against a real clock.
func JobsAt(now time.Time) []job.Job {
	out := Jobs()
	for i := range out {
		out[i].CreatedAt = now.Add(-PostedAge(out[i].PostedAt)).UTC()
	}
	return out
}

var postedAgeRe = regexp.MustCompile(`(?i)^(\d+)\s+(minute|hour|day|week|month)s?\s+ago$`)

// PostedAge parses labels like "5 hours ago" or "Just now". Unparseable
// labels count as brand new.
func PostedAge(label string) time.Duration {
	m := postedAgeRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}

	var unit time.Duration
	switch strings.ToLower(m[2]) {
	case "minute":
		unit = time.Minute
	case "hour":
		unit = time.Hour
	case "day":
		unit = 24 * time.Hour
	case "week":
		unit = 7 * 24 * time.Hour
	case "month":
		unit = 30 * 24 * time.Hour
	}
	return time.Duration(n) * unit
}

var trending = []skill.Trending{
	{Name: "TypeScript", Growth: "+38%", Count: 1240},
	{Name: "Next.js", Growth: "+24%", Count: 980},
	{Name: "Docker", Growth: "+15%", Count: 850},
	{Name: "GraphQL", Growth: "+12%", Count: 620},
}

func TrendingSkills() []skill.Trending {
	return append([]skill.Trending(nil), trending...)
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
