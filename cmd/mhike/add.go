package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
	"github.com/mhike/mhike/internal/lifecycle"
	"github.com/mhike/mhike/internal/usecase"
)

var errCancelled = errors.New("cancelled")

// hikeFlags are the form fields shared by add and edit.
type hikeFlags struct {
	name        string
	location    string
	date        string
	parking     string
	length      string
	difficulty  string
	description string
	weather     string
	duration    string
	yes         bool
	interactive bool
	format      string
}

func (f *hikeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Name of the hike")
	cmd.Flags().StringVar(&f.location, "location", "", "Where the hike took place")
	cmd.Flags().StringVar(&f.date, "date", "", "Date as YYYY-MM-DD")
	cmd.Flags().StringVar(&f.parking, "parking", "", "Parking availability: Yes, No or Limited")
	cmd.Flags().StringVar(&f.length, "length", "", "Length in kilometres")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty: Easy, Moderate, Hard or Expert")
	cmd.Flags().StringVar(&f.description, "description", "", "Free text description")
	cmd.Flags().StringVar(&f.weather, "weather", "", "Weather during the hike")
	cmd.Flags().StringVar(&f.duration, "duration", "", "Estimated duration, for example \"3 hours\"")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Save without asking for confirmation")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Prompt for every field")
	cmd.Flags().StringVar(&f.format, "format", "table", "Output format: table or json")
}

// apply copies every flag the user set onto d.
func (f *hikeFlags) apply(cmd *cobra.Command, d lifecycle.Draft) lifecycle.Draft {
	set := func(flag string, dst *string, value string) {
		if cmd.Flags().Changed(flag) {
			*dst = value
		}
	}
	set("name", &d.Name, f.name)
	set("location", &d.Location, f.location)
	set("date", &d.Date, f.date)
	set("parking", &d.ParkingAvailable, f.parking)
	set("length", &d.Length, f.length)
	set("difficulty", &d.Difficulty, f.difficulty)
	set("description", &d.Description, f.description)
	set("weather", &d.WeatherCondition, f.weather)
	set("duration", &d.EstimatedDuration, f.duration)
	return d
}

func newAddCmd() *cobra.Command {
	var flags hikeFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new hike",
		Long: `Record a new hike. The hike is checked and shown for review before it is
saved; answer "e" at the review prompt to change fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			draft := flags.apply(cmd, lifecycle.Draft{Date: hike.Today()})
			return runSave(cmd, usecase.NewHikes(dbCtx), draft, &flags, "Added")
		},
	}

	flags.register(cmd)
	return cmd
}

// runSave takes a draft through review and commit, printing the outcome.
func runSave(cmd *cobra.Command, uc *usecase.Hikes, draft lifecycle.Draft, flags *hikeFlags, verb string) error {
	p := newPrompter(cmd)
	if flags.interactive {
		var err error
		if draft, err = p.editDraft(draft); err != nil {
			return err
		}
	}

	session, err := review(cmd, p, uc, draft, flags)
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing saved")
		return nil
	}
	if err != nil {
		return err
	}

	session, err = uc.Commit(context.Background(), session)
	if err != nil {
		return fmt.Errorf("failed to save hike: %w", err)
	}

	if flags.format == "json" {
		return outputJSON(cmd, session.Hike)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s hike %d: %s\n", verb, session.Hike.ID, session.Hike.Name)
	return nil
}

// review loops until the draft is confirmed. Invalid drafts are reported
// field by field; with --yes they fail instead of prompting again.
func review(cmd *cobra.Command, p *prompter, uc *usecase.Hikes, draft lifecycle.Draft, flags *hikeFlags) (lifecycle.Session, error) {
	ctx := context.Background()
	session, err := uc.Prepare(ctx, draft)

	for {
		var verrs hike.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(cmd.ErrOrStderr(), "The hike has errors:")
			printValidationErrors(cmd, verrs)
			if flags.yes {
				return session, verrs
			}
			draft, err = p.editDraft(session.Draft)
			if err != nil {
				return session, err
			}
			session, err = uc.Prepare(ctx, draft)
			continue
		}
		if err != nil {
			return session, err
		}

		if flags.yes {
			return session, nil
		}

		outputHikeDetail(cmd, session.Hike, nil)
		var choice string
		choice, err = p.choose("Save this hike? yes, edit or no", "n", "y", "e", "n")
		if err != nil {
			return session, err
		}
		switch choice {
		case "y":
			return session, nil
		case "n":
			return session, errCancelled
		}

		draft, err = p.editDraft(session.Draft)
		if err != nil {
			return session, err
		}
		session, err = uc.Revise(session, draft)
	}
}
