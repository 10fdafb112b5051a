package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/usecase"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a hike and its observations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hike")
			if err != nil {
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
			uc := usecase.NewHikes(dbCtx)

			detail, err := uc.Get(ctx, id)
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("hike not found: %d", id)
			}

			if !force {
				message := fmt.Sprintf("Delete hike '%s'", detail.Name)
				if detail.ObservationCount > 0 {
					message += fmt.Sprintf(" and its %d observation(s)", detail.ObservationCount)
				}
				ok, err := newPrompter(cmd).confirm(message + "?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			deleted, err := uc.Delete(ctx, id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("hike not found: %d", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted hike %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
