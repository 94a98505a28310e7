package main

import (
	"fmt"
	"os"

	"github.com/miguel/ballotwatch/internal/scoring"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two candidates from a file side by side",
	Long: `Loads a JSON file of candidate profiles and compares two of them by
username, offline, without a database. Verification counters are unavailable
in this mode, so scores reflect biography signals only.`,
	RunE: runCompare,
}

var (
	compareCandidates string
	compareUsernameA  string
	compareUsernameB  string
)

func init() {
	compareCmd.Flags().StringVarP(&compareCandidates, "candidates", "c", "", "Path to candidates JSON file (required)")
	compareCmd.Flags().StringVar(&compareUsernameA, "a", "", "Username of the first candidate (required)")
	compareCmd.Flags().StringVar(&compareUsernameB, "b", "", "Username of the second candidate (required)")

	if err := compareCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := compareCmd.MarkFlagRequired("a"); err != nil {
		panic(fmt.Sprintf("failed to mark a flag as required: %v", err))
	}
	if err := compareCmd.MarkFlagRequired("b"); err != nil {
		panic(fmt.Sprintf("failed to mark b flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	if compareUsernameA == compareUsernameB {
		return fmt.Errorf("cannot compare a candidate with themselves: %s", compareUsernameA)
	}

	profiles, err := loadCandidateProfiles(compareCandidates)
	if err != nil {
		return err
	}

	profileA, err := findProfile(profiles, compareUsernameA)
	if err != nil {
		return err
	}
	profileB, err := findProfile(profiles, compareUsernameB)
	if err != nil {
		return err
	}

	result := scoring.Compare(
		scoring.ComparisonInput{Profile: profileA, Insights: scoring.BuildInsights(profileA, nil)},
		scoring.ComparisonInput{Profile: profileB, Insights: scoring.BuildInsights(profileB, nil)},
	)

	_, _ = fmt.Fprintf(os.Stdout, "%s: %d\n", profileA.DisplayName(), result.ScoreA)
	_, _ = fmt.Fprintf(os.Stdout, "%s: %d\n", profileB.DisplayName(), result.ScoreB)
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", result.Summary)

	return nil
}
