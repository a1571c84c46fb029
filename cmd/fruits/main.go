// fruits is a terminal fruit slicing game.
//
// Usage:
//
//	fruits                  - Title menu (play, difficulty, scores)
//	fruits play             - Start playing right away
//	fruits scores           - Show the run history
//	fruits record           - Show or reset the best score
//	fruits config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/fruits.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--record <path>       - Keep the best score in a plain text file
//	--sound               - Play sound cues
//	--log <path>          - Log file (default: ~/.arcade/fruits.log)
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagRecord     string
	flagSound      bool
	flagVolume     float64
	flagLog        string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruits",
	Short: "Fruit Slicer - slice falling fruit in your terminal",
	Long: `Fruit Slicer is a terminal arcade game. Walk the chef left and right,
slice the falling fruit and do not let any hit the ground.

Pineapples give a boost charge, pomegranates give back a life. A boost
slices the lowest fruit on screen one by one.

Available commands:
  play     - Start playing right away
  scores   - View the run history
  record   - Show or reset the best score
  config   - Print the effective game config

Examples:
  fruits
  fruits play --difficulty hard
  fruits play --seed 42 --sound
  fruits scores --difficulty easy`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/fruits.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagRecord, "record", "", "Best score file (default: per-user data dir)")
	pf.BoolVar(&flagSound, "sound", false, "Play sound cues")
	pf.Float64Var(&flagVolume, "volume", 0.8, "Master volume for sound cues (0-1)")
	pf.StringVar(&flagLog, "log", "~/.arcade/fruits.log", "Log file path")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(configCmd)
}
