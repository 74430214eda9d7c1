package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Goodr-Interactive/cachesim/sim"
	"github.com/Goodr-Interactive/cachesim/sim/policy"
)

var (
	// CLI flags for comparison configuration
	policyA        string // first eviction policy
	policyB        string // second eviction policy
	capacity       int    // cache slots per policy
	a1Threshold    int    // 2Q A1 queue threshold (0 = capacity/2)
	seed           int64  // master seed for sequence generation
	sequenceLength int    // number of accesses to generate
	scenarioPath   string // scenario YAML file (overrides the flags above)
	logLevel       string // log verbosity level
	showSteps      bool   // print the per-step replay table
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Cache eviction policy simulation and comparison engine",
}

// compareCmd replays one access sequence against two policies and reports
// per-step outcomes and aggregate statistics.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Replay an access sequence against two eviction policies",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.ControllerConfig{
			PolicyA:        policy.Kind(policyA),
			PolicyB:        policy.Kind(policyB),
			Capacity:       capacity,
			A1Threshold:    a1Threshold,
			Seed:           seed,
			SequenceLength: sequenceLength,
		}
		if scenarioPath != "" {
			scenario, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Unable to load scenario: %v", err)
			}
			if scenario.Name != "" {
				logrus.Infof("Loaded scenario %q from %s", scenario.Name, scenarioPath)
			}
			cfg = scenario.ControllerConfig()
		}

		logrus.Infof("Comparing %s vs %s: capacity=%d, seed=%d",
			cfg.PolicyA.Name(), cfg.PolicyB.Name(), cfg.Capacity, cfg.Seed)

		controller, err := sim.NewController(cfg)
		if err != nil {
			logrus.Fatalf("Unable to build comparison: %v", err)
		}

		PrintReport(os.Stdout, controller, showSteps)
		logrus.Info("Comparison complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	compareCmd.Flags().StringVar(&policyA, "policy-a", "fifo", "First eviction policy (fifo, lru, clock, random, optimal, 2q)")
	compareCmd.Flags().StringVar(&policyB, "policy-b", "lru", "Second eviction policy (fifo, lru, clock, random, optimal, 2q)")
	compareCmd.Flags().IntVar(&capacity, "capacity", 4, "Cache slots per policy")
	compareCmd.Flags().IntVar(&a1Threshold, "a1-threshold", 0, "2Q A1 queue length threshold (0 = capacity/2)")
	compareCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random sequence generation")
	compareCmd.Flags().IntVar(&sequenceLength, "length", 20, "Number of accesses to generate")
	compareCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file (overrides policy/capacity/seed flags)")
	compareCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	compareCmd.Flags().BoolVar(&showSteps, "show-steps", true, "Print the per-step replay table")

	// Attach `compare` as a subcommand to `root`
	rootCmd.AddCommand(compareCmd)
}
