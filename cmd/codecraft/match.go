package main

import (
	"fmt"
	"strings"

	"codecraft/internal/catalog"
	"codecraft/internal/domain/matching"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var required, skills []string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score a skill set against a required skill list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(required) == 0 {
				return fmt.Errorf("--required must list at least one skill")
			}
			res := matching.Score(required, skills)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score: %d%%\n", res.Score)
			fmt.Fprintf(out, "matched: %s\n", joinOrDash(res.MatchedSkills))
			fmt.Fprintf(out, "missing: %s\n", joinOrDash(res.MissingSkills))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&required, "required", nil, "Required skills, comma separated")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Candidate skills, comma separated")
	return cmd
}

func newCompaniesCmd() *cobra.Command {
	var skills []string

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Rank catalog companies by how well a skill set covers them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(skills) == 0 {
				return fmt.Errorf("--skills must list at least one skill")
			}

			out := cmd.OutOrStdout()
			for _, m := range matching.RankCompanies(catalog.Companies(), skills) {
				fmt.Fprintf(out, "%-12s %3d%%  missing: %s\n", m.Company, m.MatchPercentage, joinOrDash(m.MissingSkills))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Selected skills, comma separated")
	return cmd
}

func joinOrDash(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ", ")
}
