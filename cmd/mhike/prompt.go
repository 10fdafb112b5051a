package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/hike"
	"github.com/mhike/mhike/internal/lifecycle"
)

// prompter reads answers from the command's input. One reader is shared for
// the whole command so buffered input is not lost between questions.
type prompter struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{cmd: cmd, reader: bufio.NewReader(cmd.InOrStdin())}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a y/N question. Anything but "y" is a no.
func (p *prompter) confirm(message string) (bool, error) {
	fmt.Fprint(p.cmd.ErrOrStderr(), message+" (y/N) ")
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// choose asks for one of the given single-letter answers; empty input picks
// the fallback.
func (p *prompter) choose(message string, fallback string, options ...string) (string, error) {
	for {
		fmt.Fprintf(p.cmd.ErrOrStderr(), "%s [%s] ", message, strings.Join(options, "/"))
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer == "" {
			return fallback, nil
		}
		for _, opt := range options {
			if answer == strings.ToLower(opt) {
				return answer, nil
			}
		}
	}
}

// clearValue typed at a field prompt empties the field.
const clearValue = "-"

// field asks for one value. An empty answer keeps current and clearValue
// empties it.
func (p *prompter) field(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(p.cmd.ErrOrStderr(), "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(p.cmd.ErrOrStderr(), "%s: ", label)
	}
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	switch answer = strings.TrimSpace(answer); answer {
	case "":
		return current, nil
	case clearValue:
		return "", nil
	}
	return answer, nil
}

// editDraft walks through every hike field, offering the current value.
func (p *prompter) editDraft(d lifecycle.Draft) (lifecycle.Draft, error) {
	fields := []struct {
		label string
		value *string
	}{
		{"Name", &d.Name},
		{"Location", &d.Location},
		{"Date (YYYY-MM-DD)", &d.Date},
		{"Parking (" + strings.Join(hike.ParkingOptions, "/") + ")", &d.ParkingAvailable},
		{"Length (km)", &d.Length},
		{"Difficulty (" + difficultyChoices() + ")", &d.Difficulty},
		{"Description", &d.Description},
		{"Weather (" + strings.Join(hike.WeatherConditions, ", ") + ")", &d.WeatherCondition},
		{"Estimated duration", &d.EstimatedDuration},
	}
	fmt.Fprintf(p.cmd.ErrOrStderr(), "Press Enter to keep a value, %q to clear it.\n", clearValue)
	for _, f := range fields {
		value, err := p.field(f.label, *f.value)
		if err != nil {
			return d, err
		}
		*f.value = value
	}
	return d, nil
}

func difficultyChoices() string {
	names := make([]string, 0, len(hike.Difficulties))
	for _, d := range hike.Difficulties {
		names = append(names, string(d))
	}
	return strings.Join(names, "/")
}

func parseID(arg, kind string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %s", kind, arg)
	}
	return id, nil
}
