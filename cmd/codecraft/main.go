// Package main is the offline command line for the matching and roadmap
// engines. It needs no server, cache or network.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "codecraft",
		Short:         "CodeCraft skill matching and roadmap tools",
		Long:          "Score skills against requirements, rank companies and generate learning roadmaps from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassifyCmd(),
		newRoadmapCmd(),
		newMatchCmd(),
		newCompaniesCmd(),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
