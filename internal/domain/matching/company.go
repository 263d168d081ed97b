package matching

import "sort"

type CompanyProfile struct {
	Name     string   `json:"name"`
	Required []string `json:"required"`
	Roles    []string `json:"roles"`
}

type CompanyMatch struct {
	Company         string   `json:"company"`
	MatchPercentage int      `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Roles           []string `json:"roles"`
}

// ScoreCompany runs the company-side comparison. Unlike Score, the matched
// list is drawn from the user's selection (selection order and casing) while
// missing is drawn from the company's required list. The percentage is taken
// against the required count.
func ScoreCompany(p CompanyProfile, selected []string) CompanyMatch {
	req := NormalizeSet(p.Required)
	sel := NormalizeSet(selected)

	matched := make([]string, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		n := Normalize(s)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := req[n]; ok {
			matched = append(matched, s)
		}
	}

	missing := make([]string, 0, len(p.Required))
	for _, r := range p.Required {
		if _, ok := sel[Normalize(r)]; !ok {
			missing = append(missing, r)
		}
	}

	roles := make([]string, 0, len(p.Roles))
	roles = append(roles, p.Roles...)

	return CompanyMatch{
		Company:         p.Name,
		MatchPercentage: percentage(len(matched), len(p.Required)),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Roles:           roles,
	}
}

func RankCompanies(profiles []CompanyProfile, selected []string) []CompanyMatch {
	out := make([]CompanyMatch, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ScoreCompany(p, selected))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}
