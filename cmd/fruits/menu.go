package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fruits/internal/platform/tui"
)

// runMenu loops between the title screen, games and the scoreboard until
// the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	rt := runtimeConfig()
	preset := s.preset

	for {
		result, err := tui.RunMenu(rt, preset, s.records.Best())
		if err != nil {
			return err
		}
		rt, preset = result.Config, result.Difficulty

		switch result.Choice {
		case tui.ChoicePlay:
			if err := s.play(rt, preset); err != nil {
				return err
			}
		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(s.store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		default:
			return nil
		}
	}
}
