package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mhike/mhike/internal/hike"
)

func checkFormat(format string) error {
	switch format {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// wrapString wraps a string to fit within maxWidth, accounting for multi-byte characters
func wrapString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	s = strings.TrimSpace(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	var result strings.Builder
	var line strings.Builder
	width := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if width+w > maxWidth && width > 0 {
			result.WriteString(line.String())
			result.WriteString("\n")
			line.Reset()
			width = 0
		}
		line.WriteRune(r)
		width += w
	}
	result.WriteString(line.String())
	return result.String()
}

func formatLength(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + " km"
}

// difficultyColor follows the badge colours of the hike list.
func difficultyColor(level string) *color.Color {
	d, _ := hike.ParseDifficulty(level)
	switch d {
	case hike.DifficultyEasy:
		return color.New(color.FgGreen)
	case hike.DifficultyModerate:
		return color.New(color.FgYellow)
	case hike.DifficultyHard:
		return color.New(color.FgRed)
	case hike.DifficultyExpert:
		return color.New(color.FgMagenta, color.Bold)
	default:
		return color.New(color.Reset)
	}
}

// hikeColumnWidths splits the terminal between the name and location
// columns after the fixed-width ones.
func hikeColumnWidths(termWidth int, hikes []hike.Hike) (nameWidth, locationWidth int) {
	const fixed = 6 + 16 + 10 + 10 + 7*3 // id, date, length, difficulty, borders
	available := termWidth - fixed
	if available < 20 {
		available = 20
	}

	maxName := 4
	for _, h := range hikes {
		if w := runewidth.StringWidth(h.Name); w > maxName {
			maxName = w
		}
	}

	nameWidth = available * 3 / 5
	if maxName < nameWidth {
		nameWidth = maxName
	}
	locationWidth = available - nameWidth
	if locationWidth < 10 {
		locationWidth = 10
	}
	return nameWidth, locationWidth
}

func outputHikeTable(cmd *cobra.Command, hikes []hike.Hike) {
	if len(hikes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No hikes found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	nameWidth, locationWidth := hikeColumnWidths(getTerminalWidth(), hikes)

	t.AppendHeader(table.Row{"ID", "Name", "Location", "Date", "Length", "Difficulty"})
	for _, h := range hikes {
		t.AppendRow(table.Row{
			h.ID,
			wrapString(h.Name, nameWidth),
			runewidth.Truncate(h.Location, locationWidth, "..."),
			hike.FormatDate(h.Date),
			formatLength(h.Length),
			difficultyColor(h.Difficulty).Sprint(h.Difficulty),
		})
	}
	t.Render()
}

func outputHikeDetail(cmd *cobra.Command, h hike.Hike, observationCount *int64) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	valueWidth := getTerminalWidth() - 24
	if valueWidth < 20 {
		valueWidth = 20
	}

	if h.ID > 0 {
		t.AppendRow(table.Row{"ID", h.ID})
	}
	t.AppendRow(table.Row{"Name", wrapString(h.Name, valueWidth)})
	t.AppendRow(table.Row{"Location", wrapString(h.Location, valueWidth)})
	t.AppendRow(table.Row{"Date", hike.FormatDate(h.Date)})
	t.AppendRow(table.Row{"Parking", h.ParkingAvailable})
	t.AppendRow(table.Row{"Length", formatLength(h.Length)})
	t.AppendRow(table.Row{"Difficulty", difficultyColor(h.Difficulty).Sprint(h.Difficulty)})
	if h.Description != "" {
		t.AppendRow(table.Row{"Description", wrapString(h.Description, valueWidth)})
	}
	if h.WeatherCondition != "" {
		t.AppendRow(table.Row{"Weather", h.WeatherCondition})
	}
	if h.EstimatedDuration != "" {
		t.AppendRow(table.Row{"Duration", h.EstimatedDuration})
	}
	if observationCount != nil {
		t.AppendRow(table.Row{"Observations", *observationCount})
	}
	if h.CreatedAt != "" {
		t.AppendRow(table.Row{"Created", hike.FormatDateTime(h.CreatedAt)})
	}
	t.Render()
}

func outputObservationTable(cmd *cobra.Command, observations []hike.Observation) {
	if len(observations) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No observations recorded")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	textWidth := (getTerminalWidth() - 6 - 22 - 5*3) / 2
	if textWidth < 15 {
		textWidth = 15
	}

	t.AppendHeader(table.Row{"ID", "Time", "Observation", "Comments"})
	for _, o := range observations {
		t.AppendRow(table.Row{
			o.ID,
			hike.FormatDateTime(o.Time),
			wrapString(o.Observation, textWidth),
			runewidth.Truncate(o.Comments, textWidth, "..."),
		})
	}
	t.Render()
}

func printValidationErrors(cmd *cobra.Command, verrs hike.ValidationErrors) {
	red := color.New(color.FgRed)
	for _, fe := range verrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s %s\n", red.Sprint(fe.Field+":"), fe.Message)
	}
}
