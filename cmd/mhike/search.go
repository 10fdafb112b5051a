package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/usecase"
)

func newSearchCmd() *cobra.Command {
	var (
		opts   usecase.SearchOptions
		format string
	)

	cmd := &cobra.Command{
		Use:   "search [name]",
		Short: "Search hikes",
		Long: `Search hikes by a fragment of their name, or combine filters:
location fragment, length range in kilometres and date range. Bounds are inclusive.`,
		Example: `  mhike search ridge
  mhike search --location lake --min-length 5 --max-length 10
  mhike search --from 2024-01-01 --to 2024-06-30`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if opts.Name != "" {
					return fmt.Errorf("give the name either as an argument or with --name, not both")
				}
				opts.Name = args[0]
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

			hikes, err := usecase.NewHikes(dbCtx).Search(context.Background(), opts)
			if err != nil {
				return err
			}
			return outputHikes(cmd, hikes, format)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Fragment of the hike name")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Fragment of the location")
	cmd.Flags().StringVar(&opts.MinLength, "min-length", "", "Minimum length in kilometres")
	cmd.Flags().StringVar(&opts.MaxLength, "max-length", "", "Maximum length in kilometres")
	cmd.Flags().StringVar(&opts.StartDate, "from", "", "Earliest date as YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.EndDate, "to", "", "Latest date as YYYY-MM-DD")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}
