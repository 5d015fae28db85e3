package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

var errIncomplete = errors.New("translations are incomplete")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Audit translation coverage",
		Long: `Lists paths of the default locale that other locales lack, and paths
that exist in a single locale only. Exits non-zero when any locale lacks a
default-locale path.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	store := s.Store()

	report := store.Audit()
	if err := writeReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if !report.Complete() {
		return errIncomplete
	}
	return nil
}

func writeReport(w io.Writer, report i18n.Report) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	for _, locale := range slices.Sorted(maps.Keys(report.Missing)) {
		printf("missing in %s:\n", locale)
		for _, p := range report.Missing[locale] {
			printf("  %s\n", p)
		}
	}

	if len(report.Untranslated) > 0 {
		printf("single-locale paths:\n")
		for _, e := range report.Untranslated {
			printf("  %s (%s)\n", e.Path, e.Locale)
		}
	}

	if report.Complete() && len(report.Untranslated) == 0 {
		printf("ok\n")
	}

	return err
}
