package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"codecraft/internal/domain/roadmap"
	"codecraft/internal/pkg/sanitize"

	"github.com/spf13/cobra"
)

func goalFromArgs(args []string) (string, error) {
	goal := sanitize.Input(strings.Join(args, " "))
	if goal == "" {
		return "", fmt.Errorf("goal is required")
	}
	return goal, nil
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <goal>",
		Short: "Print the roadmap category a goal maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := goalFromArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), roadmap.Classify(goal).String())
			return nil
		},
	}
}

func newRoadmapCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "roadmap <goal>",
		Short: "Generate a learning roadmap for a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := goalFromArgs(args)
			if err != nil {
				return err
			}
			rm := roadmap.Build(goal)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rm)
			}

			fmt.Fprintf(out, "%s (%s, %s)\n", rm.Title, rm.Category, rm.Duration)
			if rm.Summary != "" {
				fmt.Fprintln(out, rm.Summary)
			}
			for _, m := range rm.Modules {
				fmt.Fprintf(out, "  %d. %s [%s] %s\n", m.ID, m.Title, m.Status, m.Time)
			}
			if len(rm.Projects) > 0 {
				fmt.Fprintln(out, "Projects:")
				for _, p := range rm.Projects {
					fmt.Fprintf(out, "  - %s (%s)\n", p.Title, p.Difficulty)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the roadmap as JSON")
	return cmd
}
