package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
	"github.com/mhike/mhike/internal/usecase"
)

func newObsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "obs",
		Aliases: []string{"observation"},
		Short:   "Manage observations recorded during a hike",
	}

	cmd.AddCommand(newObsAddCmd())
	cmd.AddCommand(newObsListCmd())
	cmd.AddCommand(newObsEditCmd())
	cmd.AddCommand(newObsDeleteCmd())
	cmd.AddCommand(newObsClearCmd())

	return cmd
}

func newObsAddCmd() *cobra.Command {
	var (
		at       string
		comments string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "add <hike-id> <observation>",
		Short: "Record an observation",
		Long:  "Record an observation against a hike. The time defaults to now.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hikeID, err := parseID(args[0], "hike")
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

			o, err := usecase.NewObservations(dbCtx).Add(context.Background(), usecase.AddObservationInput{
				HikeID:      hikeID,
				Observation: args[1],
				Time:        at,
				Comments:    comments,
			})
			if err != nil {
				return observationError(cmd, err)
			}

			if format == "json" {
				return outputJSON(cmd, o)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added observation %d to hike %d at %s\n", o.ID, o.HikeID, hike.FormatDateTime(o.Time))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "time", "", "Time as \"YYYY-MM-DD HH:mm:ss\" (default now)")
	cmd.Flags().StringVar(&comments, "comments", "", "Additional comments")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newObsListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list <hike-id>",
		Short: "List a hike's observations, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hikeID, err := parseID(args[0], "hike")
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
			detail, err := usecase.NewHikes(dbCtx).Get(ctx, hikeID)
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("hike not found: %d", hikeID)
			}

			observations, err := usecase.NewObservations(dbCtx).List(ctx, hikeID)
			if err != nil {
				return err
			}

			if format == "json" {
				if observations == nil {
					observations = []hike.Observation{}
				}
				return outputJSON(cmd, observations)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", detail.Name, hike.FormatDate(detail.Date))
			outputObservationTable(cmd, observations)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newObsEditCmd() *cobra.Command {
	var (
		text     string
		at       string
		comments string
	)

	cmd := &cobra.Command{
		Use:   "edit <observation-id>",
		Short: "Change an observation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "observation")
			if err != nil {
				return err
			}

			input := usecase.EditObservationInput{ID: id}
			if cmd.Flags().Changed("text") {
				input.Observation = &text
			}
			if cmd.Flags().Changed("time") {
				input.Time = &at
			}
			if cmd.Flags().Changed("comments") {
				input.Comments = &comments
			}
			if input.Observation == nil && input.Time == nil && input.Comments == nil {
				return fmt.Errorf("nothing to change: use --text, --time or --comments")
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			o, err := usecase.NewObservations(dbCtx).Edit(context.Background(), input)
			if err != nil {
				return observationError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated observation %d\n", o.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "What was observed")
	cmd.Flags().StringVar(&at, "time", "", "Time as \"YYYY-MM-DD HH:mm:ss\"")
	cmd.Flags().StringVar(&comments, "comments", "", "Additional comments")

	return cmd
}

func newObsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <observation-id>",
		Short: "Delete an observation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "observation")
			if err != nil {
				return err
			}

			if !force {
				ok, err := newPrompter(cmd).confirm(fmt.Sprintf("Delete observation %d?", id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			deleted, err := usecase.NewObservations(dbCtx).Delete(context.Background(), id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("observation not found: %d", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted observation %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func newObsClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear <hike-id>",
		Short: "Delete every observation of a hike, keeping the hike",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hikeID, err := parseID(args[0], "hike")
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
			detail, err := usecase.NewHikes(dbCtx).Get(ctx, hikeID)
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("hike not found: %d", hikeID)
			}
			if detail.ObservationCount == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Hike %d has no observations\n", hikeID)
				return nil
			}

			if !force {
				ok, err := newPrompter(cmd).confirm(fmt.Sprintf("Delete all %d observation(s) of '%s'?", detail.ObservationCount, detail.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			removed, err := usecase.NewObservations(dbCtx).Clear(ctx, hikeID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d observation(s) from hike %d\n", removed, hikeID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func observationError(cmd *cobra.Command, err error) error {
	var verrs hike.ValidationErrors
	if errors.As(err, &verrs) {
		fmt.Fprintln(cmd.ErrOrStderr(), "The observation has errors:")
		printValidationErrors(cmd, verrs)
	}
	return err
}
