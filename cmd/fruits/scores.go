package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best finished runs, optionally for one difficulty.

Examples:
  fruits scores
  fruits scores --difficulty hard
  fruits scores --recent --limit 5
  fruits scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the shown difficulty's history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	difficulty := ""
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		difficulty = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearRuns(difficulty); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %s history.\n", nameOrAll(difficulty))
		return nil
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(difficulty, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", nameOrAll(difficulty))

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'fruits play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-6s  %-7s  %s\n", "Rank", "Score", "Level", "Time", "Mode", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-6s  %-7s  %s\n", "----", "-----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-5d  %-6s  %-7s  %s\n",
			i+1, r.Score, r.Level, r.Duration.Round(time.Second), r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if difficulty != "" {
		st, err := store.DifficultyStats(difficulty)
		if err == nil {
			fmt.Fprintf(out, "Runs: %d  Best: %d  Avg: %.1f  Played: %s\n",
				st.Runs, st.HighScore, st.AvgScore, st.TotalTime.Round(time.Second))
		}
		return nil
	}

	all, err := store.AllStats()
	if err != nil {
		return nil
	}
	for _, p := range config.Presets() {
		if st, ok := all[string(p)]; ok {
			fmt.Fprintf(out, "%-7s runs %-4d best %-6d avg %.1f\n", p, st.Runs, st.HighScore, st.AvgScore)
		}
	}
	return nil
}

func nameOrAll(difficulty string) string {
	if difficulty == "" {
		return "all difficulties"
	}
	return difficulty
}
