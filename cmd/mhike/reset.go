package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/usecase"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every hike and observation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			uc := usecase.NewHikes(dbCtx)

			count, err := uc.Count(ctx)
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No hikes to delete")
				return nil
			}

			if !force {
				ok, err := newPrompter(cmd).confirm(fmt.Sprintf("Delete all %d hike(s) and their observations? This cannot be undone.", count))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}

			removed, err := uc.Reset(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d hike(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
