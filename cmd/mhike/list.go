package main

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
	"github.com/mhike/mhike/internal/usecase"
)

func newListCmd() *cobra.Command {
	var format, sortBy string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List hikes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if err := checkSort(sortBy); err != nil {
				return err
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			hikes, err := usecase.NewHikes(dbCtx).List(context.Background())
			if err != nil {
				return err
			}
			if sortBy == "difficulty" {
				sortByDifficulty(hikes)
			}
			return outputHikes(cmd, hikes, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	cmd.Flags().StringVar(&sortBy, "sort", "date", "Sort order: date (newest first) or difficulty (hardest first)")

	return cmd
}

func outputHikes(cmd *cobra.Command, hikes []hike.Hike, format string) error {
	if format == "json" {
		if hikes == nil {
			hikes = []hike.Hike{}
		}
		return outputJSON(cmd, hikes)
	}
	outputHikeTable(cmd, hikes)
	if len(hikes) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d hike(s)\n", len(hikes))
	}
	return nil
}

func checkSort(sortBy string) error {
	switch sortBy {
	case "date", "difficulty":
		return nil
	default:
		return fmt.Errorf("invalid sort: %s (valid values: date, difficulty)", sortBy)
	}
}

// sortByDifficulty puts the hardest hikes first. Hikes of equal difficulty
// keep their date order.
func sortByDifficulty(hikes []hike.Hike) {
	slices.SortStableFunc(hikes, func(a, b hike.Hike) int {
		return cmp.Compare(hike.Difficulty(b.Difficulty).Rank(), hike.Difficulty(a.Difficulty).Rank())
	})
}
