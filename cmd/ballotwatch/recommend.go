package main

import (
	"fmt"
	"os"

	"github.com/miguel/ballotwatch/internal/config"
	"github.com/miguel/ballotwatch/internal/scoring"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank candidates from a file against voter preferences",
	Long: `Loads a JSON file of candidate profiles and ranks them against the given
preference categories, offline, without a database. Verification counters are
unavailable in this mode, so scores reflect biography signals only.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath  string
	recommendCandidates  string
	recommendPreferences []string
	recommendPosition    string
	recommendLimit       int
	recommendVerbose     bool
)

func init() {
	// Config file flag (processed first)
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	recommendCmd.Flags().StringVarP(&recommendCandidates, "candidates", "c", "", "Path to candidates JSON file")
	recommendCmd.Flags().StringSliceVarP(&recommendPreferences, "preference", "p", nil, "Preference category (repeatable)")
	recommendCmd.Flags().StringVar(&recommendPosition, "position", "", "Restrict results to one office")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum recommendations returned")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(cmd, recommendConfigPath, recommendFlagOverrides)
	if err != nil {
		return err
	}

	if cfg.Candidates == "" {
		return fmt.Errorf("--candidates is required (via flag or config)")
	}
	if len(cfg.Preferences) == 0 {
		return fmt.Errorf("at least one --preference is required (via flag or config)")
	}

	profiles, err := loadCandidateProfiles(cfg.Candidates)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded %d candidates from %s\n", len(profiles), cfg.Candidates)
	}

	// Offline mode has no verification store; counters stay unfetched
	ranked := make([]scoring.RankedCandidate, len(profiles))
	for i, p := range profiles {
		ranked[i] = scoring.RankedCandidate{Profile: p}
	}

	recommendations := scoring.Recommend(cfg.Preferences, ranked, cfg.Position, cfg.Limit)
	return printJSON(recommendations)
}

// recommendFlagOverrides applies explicitly-set recommend flags onto cfg.
func recommendFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("candidates") {
		cfg.Candidates = recommendCandidates
	}
	if cmd.Flags().Changed("preference") {
		cfg.Preferences = recommendPreferences
	}
	if cmd.Flags().Changed("position") {
		cfg.Position = recommendPosition
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = recommendLimit
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = recommendVerbose
	}
}

// mergedConfig loads an optional config file, applies CLI overrides, and
// validates the result. Command-line args take priority over file values.
func mergedConfig(cmd *cobra.Command, configPath string, overrides func(*cobra.Command, *config.Config)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	overrides(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
