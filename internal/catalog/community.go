package catalog

import (
	"codecraft/internal/domain/hackathon"
	"codecraft/internal/domain/mentor"
	"codecraft/internal/domain/user"
)

var mentors = []mentor.Mentor{
	{
		ID: "mentor_1", Name: "Sarah Chen",
		Avatar:     "https://ui-avatars.com/api/?name=Sarah+Chen&background=00f3ff&color=fff",
		Expertise:  []string{"React", "TypeScript", "System Design"},
		HourlyRate: 50, Rating: 4.9, Reviews: 156, TotalSessions: 500, StudentSessions: 156,
		Bio:          "Senior Engineer at Google with 10+ years experience. Specializes in scalable frontend architecture.",
		IsAvailable:  true,
		ResponseTime: "< 1 hour",
		ReviewList: []mentor.Review{
			{ID: "1", Rating: 5, Comment: "Excellent mentor! Very clear explanations.", UserName: "Alex", Date: "2024-11-15"},
			{ID: "2", Rating: 4.9, Comment: "Helped me ace system design interviews.", UserName: "Jordan", Date: "2024-11-10"},
		},
	},
	{
		ID: "mentor_2", Name: "Alex Rodriguez",
		Avatar:     "https://ui-avatars.com/api/?name=Alex+Rodriguez&background=bc13fe&color=fff",
		Expertise:  []string{"Node.js", "MongoDB", "DevOps"},
		HourlyRate: 45, Rating: 4.7, Reviews: 98, TotalSessions: 280, StudentSessions: 98,
		Bio:          "Full Stack Developer, ex-Amazon. Expert in backend optimization and deployment.",
		IsAvailable:  true,
		ResponseTime: "< 2 hours",
		ReviewList: []mentor.Review{
			{ID: "3", Rating: 4.8, Comment: "Great DevOps guidance!", UserName: "Taylor", Date: "2024-11-12"},
		},
	},
	{
		ID: "mentor_3", Name: "Priya Patel",
		Avatar:     "https://ui-avatars.com/api/?name=Priya+Patel&background=ff0055&color=fff",
		Expertise:  []string{"DSA", "Competitive Programming", "AI/ML"},
		HourlyRate: 40, Rating: 4.8, Reviews: 203, TotalSessions: 610, StudentSessions: 203,
		Bio:          "Data Scientist at Meta, IIT Delhi Alumna. Strong background in algorithms.",
		IsAvailable:  true,
		ResponseTime: "< 30 min",
		ReviewList: []mentor.Review{
			{ID: "4", Rating: 5, Comment: "Best for competitive coding prep!", UserName: "Morgan", Date: "2024-11-18"},
			{ID: "5", Rating: 4.8, Comment: "Very knowledgeable about ML concepts.", UserName: "Casey", Date: "2024-11-08"},
		},
	},
}

func Mentors() []mentor.Mentor {
	out := make([]mentor.Mentor, len(mentors))
	for i, m := range mentors {
		m.Expertise = clone(m.Expertise)
		m.ReviewList = append([]mentor.Review(nil), m.ReviewList...)
		out[i] = m
	}
	return out
}

func Mentor(id string) (mentor.Mentor, bool) {
	for _, m := range Mentors() {
		if m.ID == id {
			return m, true
		}
	}
	return mentor.Mentor{}, false
}

var hackathons = []hackathon.Hackathon{
	{
		ID: "1", Title: "Global AI Challenge 2025", Organizer: "OpenAI & Microsoft",
		Date: "Oct 15 - 17, 2025", Prizes: "$50,000 Pool",
		Image:  "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?auto=format&fit=crop&w=800&q=80",
		Tags:   []string{"AI/ML", "Generative AI"},
		IsLive: true,
	},
	{
		ID: "2", Title: "Web3 Builders Hack", Organizer: "Ethereum Foundation",
		Date: "Nov 01 - 03, 2025", Prizes: "20 ETH",
		Image: "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?auto=format&fit=crop&w=800&q=80",
		Tags:  []string{"Blockchain", "Solidity"},
	},
	{
		ID: "3", Title: "Green Tech Summit", Organizer: "Climate Change DAO",
		Date: "Dec 10 - 12, 2025", Prizes: "$25,000 Grant",
		Image: "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?auto=format&fit=crop&w=800&q=80",
		Tags:  []string{"Sustainability", "IoT"},
	},
}

const DefaultHackathonImage = "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?auto=format&fit=crop&w=800&q=80"

func Hackathons() []hackathon.Hackathon {
	out := make([]hackathon.Hackathon, len(hackathons))
	for i, h := range hackathons {
		h.Tags = clone(h.Tags)
		out[i] = h
	}
	return out
}

var candidates = []user.Candidate{
	{ID: 1, Name: "Alex Coder", Role: "Frontend Dev", Skills: []string{"React", "TS", "Tailwind"}, GitHub: "alexcoder",
		Bio: "Passionate frontend engineer with 3 years of experience building responsive web apps.", Projects: 12, Commits: 3400},
	{ID: 2, Name: "Sarah Backend", Role: "System Architect", Skills: []string{"Go", "K8s", "Postgres"}, GitHub: "sarahb",
		Bio: "Backend specialist focused on scalable distributed systems.", Projects: 8, Commits: 5200},
	{ID: 3, Name: "Mike Fullstack", Role: "Full Stack", Skills: []string{"Node", "React", "AWS"}, GitHub: "mikefs",
		Bio: "Full stack jack-of-all-trades with a love for cloud infra.", Projects: 15, Commits: 2100},
}

func Candidates() []user.Candidate {
	out := make([]user.Candidate, len(candidates))
	for i, c := range candidates {
		c.Skills = clone(c.Skills)
		out[i] = c
	}
	return out
}
