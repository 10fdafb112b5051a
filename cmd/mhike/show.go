package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/usecase"
)

func newShowCmd() *cobra.Command {
	var (
		format       string
		observations bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a hike in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hike")
			if err != nil {
				return err
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			detail, err := usecase.NewHikes(dbCtx).Get(ctx, id)
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("hike not found: %d", id)
			}

			if format == "json" {
				return outputJSON(cmd, detail)
			}

			outputHikeDetail(cmd, detail.Hike, &detail.ObservationCount)
			if observations && detail.ObservationCount > 0 {
				list, err := usecase.NewObservations(dbCtx).List(ctx, id)
				if err != nil {
					return err
				}
				outputObservationTable(cmd, list)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	cmd.Flags().BoolVar(&observations, "observations", false, "Also list the hike's observations")

	return cmd
}
