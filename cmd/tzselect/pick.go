package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

var ErrAborted = errors.New("tzselect: prompt aborted")

// Picker asks the user to choose one of labels and returns its index.
type Picker interface {
	Pick(ctx context.Context, message string, labels []string, defaultIndex int) (int, error)
}

type surveyPicker struct{}

func newSurveyPicker() Picker {
	return surveyPicker{}
}

func (surveyPicker) Pick(ctx context.Context, message string, labels []string, defaultIndex int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message:  message,
		Options:  labels,
		PageSize: 15,
	}
	if defaultIndex >= 0 && defaultIndex < len(labels) {
		prompt.Default = labels[defaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, ErrAborted
		}
		return 0, err
	}
	for i, label := range labels {
		if label == out {
			return i, nil
		}
	}
	return -1, nil
}

func newPickCmd(a *app) *cobra.Command {
	var (
		locale   string
		priority []string
		selected string
	)
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a time zone and print its identifier.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.pick(cmd.Context(), locale, selected, priority)
			if err != nil {
				return a.fail(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "Locale to translate into.")
	cmd.Flags().StringSliceVar(&priority, "priority", nil, "Zones listed first, comma separated.")
	cmd.Flags().StringVar(&selected, "selected", "", "Zone highlighted initially.")
	return cmd
}

func (a *app) pick(ctx context.Context, locale, selected string, priority []string) (string, error) {
	if a.picker == nil {
		return "", errors.New("tzselect: no picker configured")
	}
	entries, err := a.helper.Entries(locale, selected, priority, zoneselect.Settings{})
	if err != nil {
		return "", err
	}

	labels := make([]string, 0, len(entries))
	values := make([]string, 0, len(entries))
	defaultIndex := -1
	for _, entry := range entries {
		if entry.Disabled || entry.Value == "" {
			continue
		}
		if entry.Selected {
			defaultIndex = len(labels)
		}
		labels = append(labels, entry.Label)
		values = append(values, entry.Value)
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("tzselect: no translated zones for locale %q", a.helper.Localization(locale).Locale)
	}

	idx, err := a.picker.Pick(ctx, "Time zone:", labels, defaultIndex)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(values) {
		return "", errors.New("tzselect: no zone picked")
	}
	return values[idx], nil
}
