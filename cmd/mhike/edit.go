package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/lifecycle"
	"github.com/mhike/mhike/internal/usecase"
)

func newEditCmd() *cobra.Command {
	var flags hikeFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a recorded hike",
		Long:  "Change a recorded hike. Only the fields given as flags change unless --interactive is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hike")
			if err != nil {
				return err
			}
			if err := checkFormat(flags.format); err != nil {
				return err
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			uc := usecase.NewHikes(dbCtx)
			current, err := uc.Get(context.Background(), id)
			if err != nil {
				return err
			}
			if current == nil {
				return fmt.Errorf("hike not found: %d", id)
			}

			draft := flags.apply(cmd, lifecycle.DraftFromHike(current.Hike))
			return runSave(cmd, uc, draft, &flags, "Updated")
		},
	}

	flags.register(cmd)
	return cmd
}
