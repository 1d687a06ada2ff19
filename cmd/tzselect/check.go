package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report translation coverage per locale.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.check(cmd, strict); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any locale has gaps or unknown keys.")
	return cmd
}

func (a *app) check(cmd *cobra.Command, strict bool) error {
	names := a.helper.Table().Names()
	locales := a.catalog.Locales()
	if len(locales) == 0 {
		return fmt.Errorf("no translation catalogs found")
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCALE\tTRANSLATED\tUNTRANSLATED\tUNKNOWN")

	gaps := 0
	for _, locale := range locales {
		untranslated, unknown := a.catalog.Coverage(locale, names)
		fmt.Fprintf(tw, "%s\t%d/%d\t%d\t%d\n", locale, len(names)-len(untranslated), len(names), len(untranslated), len(unknown))

		if len(untranslated) > 0 {
			a.logger.Warn().Str("locale", locale).Strs("zones", untranslated).Msg("untranslated zones")
		}
		if len(unknown) > 0 {
			a.logger.Warn().Str("locale", locale).Strs("keys", unknown).Msg("translations for unknown zones")
		}
		gaps += len(untranslated) + len(unknown)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if strict && gaps > 0 {
		return fmt.Errorf("translation coverage incomplete: %d issues", gaps)
	}
	return nil
}
