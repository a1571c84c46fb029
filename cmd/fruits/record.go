package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagResetRecord bool

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Show or reset the best score",
	Long: `Print the best score ever achieved and where it is kept.

By default the record lives in the per-user data directory. Pass
--record <file> to keep it in a plain text file instead.

Examples:
  fruits record
  fruits record --record ./records.txt
  fruits record --reset`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().BoolVar(&flagResetRecord, "reset", false, "Reset the best score to 0")
}

func runRecord(cmd *cobra.Command, _ []string) error {
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	book, err := openRecords(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagResetRecord {
		if err := book.Reset(); err != nil {
			return err
		}
		logger.Info("record reset", "location", book.Location())
		fmt.Fprintln(out, "Best score reset.")
		return nil
	}

	fmt.Fprintf(out, "Best: %d\n", book.Best())
	fmt.Fprintf(out, "Kept in: %s\n", book.Location())
	return nil
}
