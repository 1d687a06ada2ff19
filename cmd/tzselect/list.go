package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

type listFlags struct {
	locale        string
	priority      []string
	selected      string
	format        string
	sort          string
	priorityLabel string
	includeBlank  bool
}

func newListCmd(a *app) *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the localized option list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.list(cmd, f); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale to translate into (defaults to the configured locale).")
	cmd.Flags().StringSliceVar(&f.priority, "priority", nil, "Zones listed first, comma separated.")
	cmd.Flags().StringVar(&f.selected, "selected", "", "Zone to mark as selected.")
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text, json or html.")
	cmd.Flags().StringVar(&f.sort, "sort", "offset", "Full list order: offset or name.")
	cmd.Flags().StringVar(&f.priorityLabel, "priority-label", "", "Heading shown above priority zones.")
	cmd.Flags().BoolVar(&f.includeBlank, "include-blank", false, "Start with a blank entry.")
	return cmd
}

func (a *app) list(cmd *cobra.Command, f *listFlags) error {
	settings := zoneselect.Settings{
		PriorityLabel: f.priorityLabel,
		IncludeBlank:  f.includeBlank,
	}
	switch f.sort {
	case "", "offset":
		settings.SortBy = zoneselect.SortByOffset
	case "name":
		settings.SortBy = zoneselect.SortByName
	default:
		return fmt.Errorf("unsupported sort %q", f.sort)
	}

	locale := a.helper.Localization(f.locale).Locale
	out := cmd.OutOrStdout()

	switch f.format {
	case "html":
		markup, err := a.helper.OptionsForSelect(cmd.Context(), locale, f.selected, f.priority, settings)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, markup)
		return err
	case "json":
		entries, err := a.helper.Entries(locale, f.selected, f.priority, settings)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Locale string              `json:"locale"`
			Data   []zoneselect.Option `json:"data"`
		}{Locale: locale, Data: entries})
	case "text", "":
		entries, err := a.helper.Entries(locale, f.selected, f.priority, settings)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, entry := range entries {
			mark := " "
			if entry.Selected {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, entry.Value, entry.Label)
		}
		a.logger.Debug().Str("locale", locale).Int("entries", len(entries)).Msg("listed zones")
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q", f.format)
	}
}
